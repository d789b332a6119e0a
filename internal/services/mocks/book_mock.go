// filepath: internal/services/mocks/book_mock.go
package mocks

import (
	"horizonlib/internal/models"
	"horizonlib/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockBookService is a mock implementation of services.BookService
type MockBookService struct {
	mock.Mock
}

var _ services.BookService = (*MockBookService)(nil)

func (m *MockBookService) GetBooks() ([]models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) GetBook(id int64) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) SearchBooks(q string) ([]models.Book, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) CreateBook(in services.BookInput, cover *services.CoverUpload) (*models.Book, error) {
	args := m.Called(in, cover)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) UpdateBook(id int64, in services.BookInput, cover *services.CoverUpload, clearCover bool) (*models.Book, error) {
	args := m.Called(id, in, cover, clearCover)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) DeleteBook(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
