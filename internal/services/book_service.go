// filepath: internal/services/book_service.go
package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"horizonlib/internal/config"
	"horizonlib/internal/logging"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"
)

// Max rows returned by a public catalog search.
const searchResultLimit = 10

// Cover image uploads must carry one of these extensions.
var allowedCoverExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var _ BookService = (*bookService)(nil)

// bookService handles business logic for the catalog.
type bookService struct {
	Repo    *repository.Repository
	Storage StorageService
	cfg     *config.Config
}

// NewBookService creates a new BookService.
func NewBookService(repo *repository.Repository, storage StorageService, cfg *config.Config) *bookService {
	return &bookService{Repo: repo, Storage: storage, cfg: cfg}
}

// GetBooks returns all catalog rows.
func (s *bookService) GetBooks() ([]models.Book, error) {
	return s.Repo.GetBooks()
}

// GetBook returns a single book or ErrNotFound.
func (s *bookService) GetBook(id int64) (*models.Book, error) {
	book, err := s.Repo.GetBookByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return nil, err
	}
	return book, nil
}

// SearchBooks matches title, author, or isbn substrings, case-insensitive,
// capped at 10 rows.
func (s *bookService) SearchBooks(q string) ([]models.Book, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrValidation)
	}
	return s.Repo.SearchBooks(q, searchResultLimit)
}

// validateCover checks size, extension, and declared content type. It runs
// before anything is written to disk or the database.
func (s *bookService) validateCover(cover *CoverUpload) (string, error) {
	if cover.Size > s.cfg.MaxUploadSizeBytes {
		return "", fmt.Errorf("%w: cover image exceeds the %s limit", ErrValidation, s.cfg.Server.MaxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(cover.Filename))
	if !allowedCoverExtensions[ext] {
		return "", fmt.Errorf("%w: only image files are allowed (jpeg, jpg, png, gif)", ErrValidation)
	}

	if !strings.HasPrefix(cover.ContentType, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed (jpeg, jpg, png, gif)", ErrValidation)
	}

	return ext, nil
}

// validateInput checks the required book fields and trims them in place.
func validateInput(in *BookInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	if in.Title == "" || in.Author == "" || in.ISBN == "" {
		return fmt.Errorf("%w: title, author, and ISBN are required fields", ErrValidation)
	}
	return nil
}

// CreateBook validates the input and optional cover, then inserts the row.
// The cover file is saved before the insert; if the insert fails the file
// is removed again so no orphaned upload remains.
func (s *bookService) CreateBook(in BookInput, cover *CoverUpload) (*models.Book, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	var coverExt string
	if cover != nil {
		ext, err := s.validateCover(cover)
		if err != nil {
			return nil, err
		}
		coverExt = ext
	}

	// Surface duplicate ISBNs before touching storage.
	if _, err := s.Repo.GetBookIDByISBN(in.ISBN); err == nil {
		return nil, fmt.Errorf("%w: a book with this ISBN already exists", ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var coverURL *string
	if cover != nil {
		url, err := s.Storage.SaveCover(cover.File, coverExt)
		if err != nil {
			logging.Log.Errorf("BookService: failed to save cover image: %v", err)
			return nil, fmt.Errorf("failed to save cover image: %w", err)
		}
		coverURL = &url
	}

	book := &models.Book{
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		PublishedDate: in.PublishedDate,
		Description:   in.Description,
		CoverImageURL: coverURL,
		ShelfNumber:   in.ShelfNumber,
		RowPosition:   in.RowPosition,
	}

	created, err := s.Repo.CreateBook(book)
	if err != nil {
		if coverURL != nil {
			if delErr := s.Storage.DeleteCover(*coverURL); delErr != nil {
				logging.Log.Errorf("BookService: failed to delete uploaded file after insert error: %v", delErr)
			}
		}
		if errors.Is(err, repository.ErrDuplicateISBN) {
			return nil, fmt.Errorf("%w: a book with this ISBN already exists", ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

// UpdateBook replaces all mutable fields. Without a new cover the existing
// reference is preserved, unless clearCover nulls it explicitly.
func (s *bookService) UpdateBook(id int64, in BookInput, cover *CoverUpload, clearCover bool) (*models.Book, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetBookByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return nil, err
	}

	coverURL := existing.CoverImageURL
	var newCoverURL *string
	if cover != nil {
		ext, err := s.validateCover(cover)
		if err != nil {
			return nil, err
		}
		url, err := s.Storage.SaveCover(cover.File, ext)
		if err != nil {
			logging.Log.Errorf("BookService: failed to save cover image: %v", err)
			return nil, fmt.Errorf("failed to save cover image: %w", err)
		}
		coverURL = &url
		newCoverURL = &url
	} else if clearCover {
		coverURL = nil
	}

	book := &models.Book{
		ID:            id,
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		PublishedDate: in.PublishedDate,
		Description:   in.Description,
		CoverImageURL: coverURL,
		ShelfNumber:   in.ShelfNumber,
		RowPosition:   in.RowPosition,
	}

	if err := s.Repo.UpdateBook(book); err != nil {
		if newCoverURL != nil {
			if delErr := s.Storage.DeleteCover(*newCoverURL); delErr != nil {
				logging.Log.Errorf("BookService: failed to delete uploaded file after update error: %v", delErr)
			}
		}
		if errors.Is(err, repository.ErrDuplicateISBN) {
			return nil, fmt.Errorf("%w: a book with this ISBN already exists", ErrConflict)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return nil, err
	}

	return s.Repo.GetBookByID(id)
}

// DeleteBook removes the row. The stored cover image file is kept; uploads
// are only reclaimed manually.
func (s *bookService) DeleteBook(id int64) error {
	if err := s.Repo.DeleteBook(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}
