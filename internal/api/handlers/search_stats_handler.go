// filepath: internal/api/handlers/search_stats_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// TrackSearchRequest carries the searched title to record.
type TrackSearchRequest struct {
	Title string `json:"title"`
}

// TrackSearchResponse acknowledges a recorded search.
type TrackSearchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Title   string `json:"title"`
}

// ClearHistoryResponse reports how many counter rows were removed.
type ClearHistoryResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// TrackSearch godoc
// @Summary      Record a search
// @Description  Increments the frequency counter for a title. Unauthenticated.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        search body TrackSearchRequest true "Searched title"
// @Success      200 {object} TrackSearchResponse
// @Failure      400 {object} ErrorResponse "Empty title"
// @Router       /api/search-stats/track-search [post]
func (h *Handlers) TrackSearch(w http.ResponseWriter, r *http.Request) {
	var req TrackSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	title, err := h.Search.Track(req.Title)
	if err != nil {
		respondWithServiceError(w, err, "Failed to record search")
		return
	}

	respondWithJSON(w, http.StatusOK, TrackSearchResponse{
		Success: true,
		Message: "Search tracked",
		Title:   title,
	})
}

// MostSearched godoc
// @Summary      Most searched titles
// @Description  Top titles by search count, then recency. Unauthenticated.
// @Tags         search
// @Produce      json
// @Success      200 {array} models.BookSearch
// @Router       /api/search-stats/most-searched [get]
func (h *Handlers) MostSearched(w http.ResponseWriter, r *http.Request) {
	searches, err := h.Search.MostSearched()
	if err != nil {
		respondWithServiceError(w, err, "Failed to load search statistics")
		return
	}
	respondWithJSON(w, http.StatusOK, searches)
}

// ClearSearchHistory godoc
// @Summary      Clear search history
// @Description  Deletes all search counters. Librarian only.
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ClearHistoryResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/search-stats/clear-history [delete]
func (h *Handlers) ClearSearchHistory(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Search.ClearHistory()
	if err != nil {
		respondWithServiceError(w, err, "Failed to clear search history")
		return
	}

	respondWithJSON(w, http.StatusOK, ClearHistoryResponse{
		Success:      true,
		Message:      "Search history cleared",
		DeletedCount: deleted,
	})
}
