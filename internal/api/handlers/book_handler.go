// filepath: internal/api/handlers/book_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"horizonlib/internal/models"
	"horizonlib/internal/services"

	"github.com/gorilla/mux"
)

// multipartMemoryLimit caps how much of a multipart body is held in memory
// while parsing; larger parts spill to temp files.
const multipartMemoryLimit = 10 << 20 // 10 MB

// BookResponse wraps a catalog row for create/update replies.
type BookResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Book    *models.Book `json:"book"`
}

// GetLibrarianBooks godoc
// @Summary      List books (librarian view)
// @Tags         librarian
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Book
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/librarian/books [get]
func (h *Handlers) GetLibrarianBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Book.GetBooks()
	if err != nil {
		respondWithServiceError(w, err, "Failed to list books")
		return
	}
	respondWithJSON(w, http.StatusOK, books)
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Accepts multipart form data with an optional coverImage file part.
// @Tags         librarian
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        author formData string true "Author"
// @Param        isbn formData string true "ISBN"
// @Param        published_date formData string false "Published date"
// @Param        description formData string false "Description"
// @Param        shelf_number formData string false "Shelf number"
// @Param        row_position formData string false "Row position"
// @Param        coverImage formData file false "Cover image"
// @Success      201 {object} BookResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Duplicate ISBN"
// @Router       /api/librarian/books [post]
func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	in, cover, closeCover, err := h.parseBookForm(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer closeCover()

	book, err := h.Book.CreateBook(in, cover)
	if err != nil {
		respondWithServiceError(w, err, "Failed to create book")
		return
	}

	respondWithJSON(w, http.StatusCreated, BookResponse{
		Success: true,
		Message: "Book created successfully",
		Book:    book,
	})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Full replacement of the mutable fields. Sending the
// @Description  cover_image_url form field as an empty string clears the
// @Description  stored cover reference; omitting it keeps the current one.
// @Tags         librarian
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Success      200 {object} BookResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Duplicate ISBN"
// @Router       /api/librarian/books/{id} [put]
func (h *Handlers) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	in, cover, closeCover, err := h.parseBookForm(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer closeCover()

	// An explicit empty cover_image_url field clears the stored cover.
	clearCover := false
	if cover == nil && r.MultipartForm != nil {
		if vals, ok := r.MultipartForm.Value["cover_image_url"]; ok && len(vals) > 0 && vals[0] == "" {
			clearCover = true
		}
	}

	book, err := h.Book.UpdateBook(id, in, cover, clearCover)
	if err != nil {
		respondWithServiceError(w, err, "Failed to update book")
		return
	}

	respondWithJSON(w, http.StatusOK, BookResponse{
		Success: true,
		Message: "Book updated successfully",
		Book:    book,
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         librarian
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/librarian/books/{id} [delete]
func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	if err := h.Book.DeleteBook(id); err != nil {
		respondWithServiceError(w, err, "Failed to delete book")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Book deleted successfully",
	})
}

// parseBookForm extracts the book fields and optional cover image from a
// multipart request. The returned close func is always safe to defer.
func (h *Handlers) parseBookForm(r *http.Request) (services.BookInput, *services.CoverUpload, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return services.BookInput{}, nil, noop, fmt.Errorf("invalid multipart form data: %w", err)
	}

	in := services.BookInput{
		Title:         r.FormValue("title"),
		Author:        r.FormValue("author"),
		ISBN:          r.FormValue("isbn"),
		PublishedDate: optionalFormValue(r, "published_date"),
		Description:   optionalFormValue(r, "description"),
		ShelfNumber:   optionalFormValue(r, "shelf_number"),
		RowPosition:   optionalFormValue(r, "row_position"),
	}

	file, header, err := r.FormFile("coverImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil, noop, nil
		}
		return services.BookInput{}, nil, noop, fmt.Errorf("invalid cover image upload: %w", err)
	}

	cover := &services.CoverUpload{
		File:        file,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
	return in, cover, func() { file.Close() }, nil
}

// optionalFormValue returns nil for absent or empty form fields.
func optionalFormValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
