package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"postboard/cmd/app"
	"postboard/internal/config"
	handlers "postboard/internal/handler"
	"postboard/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/api/v1/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/user", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/current-user", handler.CurrentUser).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/post", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/post/user", handler.GetMyPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/post/{post_id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/post/{post_id}", handler.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/post/{post_id}", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(
			services.Auth,
			"/api/v1/user",
			"/api/v1/login",
			"/api/v1/health",
			"/tables",
		),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
