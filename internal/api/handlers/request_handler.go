// filepath: internal/api/handlers/request_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"horizonlib/internal/models"
	"horizonlib/internal/services"
	"horizonlib/internal/services/auth"

	"github.com/gorilla/mux"
)

// SubmitRequestBody is the payload for a new book request.
type SubmitRequestBody struct {
	Title           string  `json:"title"`
	Author          *string `json:"author"`
	ISBN            *string `json:"isbn"`
	Reason          *string `json:"reason"`
	AdditionalNotes *string `json:"additionalNotes"`
}

// RequestResponse wraps a single book request.
type RequestResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *models.BookRequest `json:"data"`
}

// RequestListResponse wraps the full request list.
type RequestListResponse struct {
	Success bool                 `json:"success"`
	Data    []models.BookRequest `json:"data"`
}

// UpdateStatusBody carries the new workflow status.
type UpdateStatusBody struct {
	Status string `json:"status"`
}

// SubmitBookRequest godoc
// @Summary      Submit a book request
// @Description  Records an acquisition request attributed to the logged-in student.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitRequestBody true "Requested book"
// @Success      201 {object} RequestResponse
// @Failure      400 {object} ErrorResponse "Missing title"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/book-requests [post]
func (h *Handlers) SubmitBookRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body SubmitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := h.Request.Submit(identity.UserID, services.RequestInput{
		Title:           body.Title,
		Author:          body.Author,
		ISBN:            body.ISBN,
		Reason:          body.Reason,
		AdditionalNotes: body.AdditionalNotes,
	})
	if err != nil {
		respondWithServiceError(w, err, "Failed to submit book request")
		return
	}

	respondWithJSON(w, http.StatusCreated, RequestResponse{
		Success: true,
		Message: "Book request submitted successfully",
		Data:    request,
	})
}

// ListBookRequests godoc
// @Summary      List book requests
// @Description  All requests, newest first, with requester usernames. Librarian only.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} RequestListResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/book-requests [get]
func (h *Handlers) ListBookRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Request.List()
	if err != nil {
		respondWithServiceError(w, err, "Failed to list book requests")
		return
	}
	respondWithJSON(w, http.StatusOK, RequestListResponse{Success: true, Data: requests})
}

// UpdateRequestStatus godoc
// @Summary      Update request status
// @Description  Moves a request to any of the five workflow statuses. Librarian only.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Request ID"
// @Param        status body UpdateStatusBody true "New status"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Unknown status"
// @Failure      404 {object} ErrorResponse
// @Router       /api/book-requests/{id}/status [patch]
func (h *Handlers) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var body UpdateStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Request.UpdateStatus(id, body.Status); err != nil {
		respondWithServiceError(w, err, "Failed to update request status")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Request status updated",
	})
}
