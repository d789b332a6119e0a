// filepath: internal/services/search_service_test.go
package services_test

import (
	"path/filepath"
	"testing"

	"horizonlib/internal/config"
	"horizonlib/internal/repository"
	"horizonlib/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchService(t *testing.T) services.SearchService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DatabasePath = filepath.Join(t.TempDir(), "test.db")

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchemaBootstrapped())
	t.Cleanup(func() { repo.Close() })

	return services.NewSearchService(repo)
}

func TestTrack_TrimsTitle(t *testing.T) {
	svc := setupSearchService(t)

	title, err := svc.Track("  Dune  ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", title)

	// The trimmed spelling and the plain spelling share one counter
	_, err = svc.Track("Dune")
	require.NoError(t, err)

	searches, err := svc.MostSearched()
	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, int64(2), searches[0].SearchCount)
}

func TestTrack_EmptyTitle(t *testing.T) {
	svc := setupSearchService(t)

	_, err := svc.Track("   ")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestClearHistory_ReportsDeletedCount(t *testing.T) {
	svc := setupSearchService(t)

	_, err := svc.Track("One")
	require.NoError(t, err)
	_, err = svc.Track("Two")
	require.NoError(t, err)

	deleted, err := svc.ClearHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
