// filepath: internal/services/mocks/request_mock.go
package mocks

import (
	"horizonlib/internal/models"
	"horizonlib/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockRequestService is a mock implementation of services.RequestService
type MockRequestService struct {
	mock.Mock
}

var _ services.RequestService = (*MockRequestService)(nil)

func (m *MockRequestService) Submit(userID int64, in services.RequestInput) (*models.BookRequest, error) {
	args := m.Called(userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookRequest), args.Error(1)
}

func (m *MockRequestService) List() ([]models.BookRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookRequest), args.Error(1)
}

func (m *MockRequestService) UpdateStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
