// filepath: internal/services/search_service.go
package services

import (
	"fmt"
	"strings"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"
)

// Max rows returned by the most-searched report.
const mostSearchedLimit = 20

var _ SearchService = (*searchService)(nil)

// searchService maintains the per-title search counters.
type searchService struct {
	Repo *repository.Repository
}

// NewSearchService creates a new SearchService.
func NewSearchService(repo *repository.Repository) *searchService {
	return &searchService{Repo: repo}
}

// Track records one search for title and returns the cleaned title.
// Repeated calls for the same title increment its counter.
func (s *searchService) Track(title string) (string, error) {
	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return "", fmt.Errorf("%w: book title is required", ErrValidation)
	}

	if err := s.Repo.TrackSearch(cleanTitle); err != nil {
		logging.Log.Errorf("SearchService: failed to track search for '%s': %v", cleanTitle, err)
		return "", err
	}
	return cleanTitle, nil
}

// MostSearched returns the top 20 titles by search count.
func (s *searchService) MostSearched() ([]models.BookSearch, error) {
	return s.Repo.GetMostSearched(mostSearchedLimit)
}

// ClearHistory deletes all search records and reports how many were removed.
func (s *searchService) ClearHistory() (int64, error) {
	return s.Repo.ClearSearchHistory()
}
