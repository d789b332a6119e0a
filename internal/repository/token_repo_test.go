// filepath: internal/repository/token_repo_test.go
package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokeToken(t *testing.T) {
	repo := setupTestRepo(t)

	revoked, err := repo.IsTokenRevoked("jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.RevokeToken("jti-1", time.Now().Add(time.Hour)))

	revoked, err = repo.IsTokenRevoked("jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking twice is a no-op
	assert.NoError(t, repo.RevokeToken("jti-1", time.Now().Add(time.Hour)))
}

func TestPurgeExpiredTokens(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.RevokeToken("stale", time.Now().Add(-time.Hour)))
	require.NoError(t, repo.RevokeToken("fresh", time.Now().Add(time.Hour)))

	purged, err := repo.PurgeExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// The live denylist entry survives the purge
	revoked, err := repo.IsTokenRevoked("fresh")
	require.NoError(t, err)
	assert.True(t, revoked)
}
