// filepath: internal/services/mocks/search_mock.go
package mocks

import (
	"horizonlib/internal/models"
	"horizonlib/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of services.SearchService
type MockSearchService struct {
	mock.Mock
}

var _ services.SearchService = (*MockSearchService)(nil)

func (m *MockSearchService) Track(title string) (string, error) {
	args := m.Called(title)
	return args.String(0), args.Error(1)
}

func (m *MockSearchService) MostSearched() ([]models.BookSearch, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookSearch), args.Error(1)
}

func (m *MockSearchService) ClearHistory() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
