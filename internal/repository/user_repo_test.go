// filepath: internal/repository/user_repo_test.go
package repository

import (
	"testing"

	"horizonlib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := setupTestRepo(t)

	user, err := repo.CreateUser(&UserCreateArgs{
		Username: "marian",
		Password: "plaintext",
		Role:     models.RoleLibrarian,
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleLibrarian, user.Role)
	assert.NotEqual(t, "plaintext", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plaintext")))
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateUser(&UserCreateArgs{Username: "dup", Password: "x", Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = repo.CreateUser(&UserCreateArgs{Username: "dup", Password: "y", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestGetUserByUsername(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.CreateUser(&UserCreateArgs{Username: "lookup", Password: "x", Role: models.RoleStudent})
	require.NoError(t, err)

	// Second call is served from cache; both must agree
	for i := 0; i < 2; i++ {
		user, err := repo.GetUserByUsername("lookup")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	}

	_, err = repo.GetUserByUsername("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
