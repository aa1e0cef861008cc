package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// TablesHandler reports how many tables exist in the public schema. Diagnostic
// endpoint for checking that migrations ran.
func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesDB()
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, TablesResponse{CountTables: count}, http.StatusOK)
}
