package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"postboard/internal/service"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError sends a JSON error response.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteAuthError sends a 401 with the bearer challenge header.
func WriteAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	WriteError(w, message, http.StatusUnauthorized)
}

// WriteSuccess sends a JSON success response.
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps a service error kind to its HTTP status. Storage
// failures are logged with full detail but the client only sees generic text.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrEmailTaken):
		WriteError(w, "Email already registered", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteAuthError(w, "Invalid credentials")
	case errors.Is(err, service.ErrUnauthorized):
		WriteAuthError(w, err.Error())
	case errors.Is(err, service.ErrPostNotFound):
		WriteError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "You are not authorized to modify this post", http.StatusForbidden)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
