// filepath: internal/services/request_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"
)

var _ RequestService = (*requestService)(nil)

// requestService handles the book acquisition-request workflow.
type requestService struct {
	Repo *repository.Repository
}

// NewRequestService creates a new RequestService.
func NewRequestService(repo *repository.Repository) *requestService {
	return &requestService{Repo: repo}
}

// Submit creates a pending request on behalf of the given user.
func (s *requestService) Submit(userID int64, in RequestInput) (*models.BookRequest, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: book title is required", ErrValidation)
	}

	req := &models.BookRequest{
		Title:           title,
		Author:          trimOptional(in.Author),
		ISBN:            trimOptional(in.ISBN),
		Reason:          trimOptional(in.Reason),
		AdditionalNotes: trimOptional(in.AdditionalNotes),
		RequestedBy:     &userID,
	}

	created, err := s.Repo.CreateBookRequest(req)
	if err != nil {
		logging.Log.Errorf("RequestService: failed to submit request '%s': %v", title, err)
		return nil, err
	}
	return created, nil
}

// List returns all requests with requester usernames, newest first.
func (s *requestService) List() ([]models.BookRequest, error) {
	return s.Repo.GetBookRequests()
}

// UpdateStatus moves a request to one of the five workflow statuses.
// Transitions are unrestricted.
func (s *requestService) UpdateStatus(id int64, status string) error {
	if !models.ValidRequestStatus(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	if err := s.Repo.UpdateBookRequestStatus(id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: request %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// trimOptional trims an optional field, mapping blank values to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
