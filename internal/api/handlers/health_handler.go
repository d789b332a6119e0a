// filepath: internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"
	"time"
)

// HealthResponse is the payload of the health probe.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck godoc
// @Summary      Health probe
// @Description  Reports that the API is up. Unauthenticated.
// @Tags         meta
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// Root serves a plain-text banner so a browser hitting the bare host sees
// something friendlier than a 404.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Library Catalog API is running"))
}
