// filepath: internal/repository/search_repo_test.go
package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackSearch_UpsertsCounter(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.TrackSearch("Dune"))
	require.NoError(t, repo.TrackSearch("Dune"))
	require.NoError(t, repo.TrackSearch("Foundation"))

	searches, err := repo.GetMostSearched(20)
	require.NoError(t, err)
	require.Len(t, searches, 2)

	// Highest count first
	assert.Equal(t, "Dune", searches[0].Title)
	assert.Equal(t, int64(2), searches[0].SearchCount)
	assert.Equal(t, "Foundation", searches[1].Title)
	assert.Equal(t, int64(1), searches[1].SearchCount)
}

func TestTrackSearch_ConcurrentCallersAllCounted(t *testing.T) {
	repo := setupTestRepo(t)

	const callers = 16
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.TrackSearch("Dune")
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	searches, err := repo.GetMostSearched(20)
	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, int64(callers), searches[0].SearchCount)
}

func TestTrackSearch_TitlesAreCaseSensitive(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.TrackSearch("dune"))
	require.NoError(t, repo.TrackSearch("Dune"))

	searches, err := repo.GetMostSearched(20)
	require.NoError(t, err)
	assert.Len(t, searches, 2)
}

func TestGetMostSearched_Limit(t *testing.T) {
	repo := setupTestRepo(t)

	titles := []string{"a", "b", "c", "d", "e"}
	for _, title := range titles {
		require.NoError(t, repo.TrackSearch(title))
	}

	searches, err := repo.GetMostSearched(3)
	require.NoError(t, err)
	assert.Len(t, searches, 3)
}

func TestClearSearchHistory(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.TrackSearch("Dune"))
	require.NoError(t, repo.TrackSearch("Foundation"))

	deleted, err := repo.ClearSearchHistory()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	searches, err := repo.GetMostSearched(20)
	require.NoError(t, err)
	assert.Empty(t, searches)

	// Clearing an empty table reports zero rows
	deleted, err = repo.ClearSearchHistory()
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
