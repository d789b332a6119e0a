// filepath: internal/api/handlers/public_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// GetBooks godoc
// @Summary      List books
// @Description  Returns the full catalog. Unauthenticated.
// @Tags         catalog
// @Produce      json
// @Success      200 {array} models.Book
// @Failure      500 {object} ErrorResponse
// @Router       /api/books [get]
func (h *Handlers) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Book.GetBooks()
	if err != nil {
		respondWithServiceError(w, err, "Failed to list books")
		return
	}
	respondWithJSON(w, http.StatusOK, books)
}

// GetBook godoc
// @Summary      Get a book
// @Tags         catalog
// @Produce      json
// @Param        id path int true "Book ID"
// @Success      200 {object} models.Book
// @Failure      404 {object} ErrorResponse
// @Router       /api/books/{id} [get]
func (h *Handlers) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := h.Book.GetBook(id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to load book")
		return
	}
	respondWithJSON(w, http.StatusOK, book)
}

// SearchBooks godoc
// @Summary      Search books
// @Description  Case-insensitive substring match on title, author and ISBN.
// @Tags         catalog
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {array} models.Book
// @Failure      400 {object} ErrorResponse "Missing search term"
// @Router       /api/books/search [get]
func (h *Handlers) SearchBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Book.SearchBooks(r.URL.Query().Get("q"))
	if err != nil {
		respondWithServiceError(w, err, "Failed to search books")
		return
	}
	respondWithJSON(w, http.StatusOK, books)
}
