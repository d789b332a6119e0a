// filepath: internal/services/interfaces.go
package services

import (
	"io"

	"horizonlib/internal/models"
	"horizonlib/internal/repository"
)

// UserService handles credential lookups and provisioning.
type UserService interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	CreateUser(args repository.UserCreateArgs) (*models.User, error)
}

// BookInput carries the mutable fields of a book for create/update.
type BookInput struct {
	Title         string
	Author        string
	ISBN          string
	PublishedDate *string
	Description   *string
	ShelfNumber   *string
	RowPosition   *string
}

// CoverUpload describes an uploaded cover image file.
type CoverUpload struct {
	File        io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// BookService handles catalog business logic.
type BookService interface {
	GetBooks() ([]models.Book, error)
	GetBook(id int64) (*models.Book, error)
	SearchBooks(q string) ([]models.Book, error)
	CreateBook(in BookInput, cover *CoverUpload) (*models.Book, error)
	UpdateBook(id int64, in BookInput, cover *CoverUpload, clearCover bool) (*models.Book, error)
	DeleteBook(id int64) error
}

// SearchService maintains the per-title search counters.
type SearchService interface {
	Track(title string) (string, error)
	MostSearched() ([]models.BookSearch, error)
	ClearHistory() (int64, error)
}

// RequestInput carries the fields of a student book request.
type RequestInput struct {
	Title           string
	Author          *string
	ISBN            *string
	Reason          *string
	AdditionalNotes *string
}

// RequestService handles the acquisition-request workflow.
type RequestService interface {
	Submit(userID int64, in RequestInput) (*models.BookRequest, error)
	List() ([]models.BookRequest, error)
	UpdateStatus(id int64, status string) error
}

// StorageService persists uploaded cover images and returns the public URL
// they will be served under.
type StorageService interface {
	SaveCover(file io.Reader, ext string) (string, error)
	DeleteCover(url string) error
}
