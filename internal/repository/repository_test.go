// filepath: internal/repository/repository_test.go
package repository

import (
	"path/filepath"
	"testing"

	"horizonlib/internal/config"
	"horizonlib/internal/models"

	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a migrated repository backed by a throwaway database.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DatabasePath = filepath.Join(t.TempDir(), "test.db")

	repo, err := NewRepository(cfg)
	require.NoError(t, err, "failed to create test repository")

	require.NoError(t, repo.EnsureSchemaBootstrapped(), "failed to migrate test database")

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// newTestBook returns a minimal valid book row.
func newTestBook(title, isbn string) *models.Book {
	return &models.Book{
		Title:  title,
		Author: "Test Author",
		ISBN:   isbn,
	}
}
