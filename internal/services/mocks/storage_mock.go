// filepath: internal/services/mocks/storage_mock.go
package mocks

import (
	"io"

	"horizonlib/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockStorageService is a mock implementation of services.StorageService
type MockStorageService struct {
	mock.Mock
}

var _ services.StorageService = (*MockStorageService)(nil)

func (m *MockStorageService) SaveCover(file io.Reader, ext string) (string, error) {
	args := m.Called(file, ext)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) DeleteCover(url string) error {
	args := m.Called(url)
	return args.Error(0)
}
