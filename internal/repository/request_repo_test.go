// filepath: internal/repository/request_repo_test.go
package repository

import (
	"testing"

	"horizonlib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStudent(t *testing.T, repo *Repository) *models.User {
	t.Helper()
	user, err := repo.CreateUser(&UserCreateArgs{
		Username: "student1",
		Password: "secret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	return user
}

func TestCreateBookRequest(t *testing.T) {
	repo := setupTestRepo(t)
	user := createTestStudent(t, repo)

	author := "Le Guin"
	reason := "Course reading"
	created, err := repo.CreateBookRequest(&models.BookRequest{
		Title:       "The Dispossessed",
		Author:      &author,
		Reason:      &reason,
		RequestedBy: &user.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, models.RequestStatusPending, created.Status)
	require.NotNil(t, created.RequestedBy)
	assert.Equal(t, user.ID, *created.RequestedBy)
	assert.False(t, created.RequestedAt.IsZero())
}

func TestGetBookRequests_IncludesUsername(t *testing.T) {
	repo := setupTestRepo(t)
	user := createTestStudent(t, repo)

	_, err := repo.CreateBookRequest(&models.BookRequest{Title: "First", RequestedBy: &user.ID})
	require.NoError(t, err)
	_, err = repo.CreateBookRequest(&models.BookRequest{Title: "Second", RequestedBy: &user.ID})
	require.NoError(t, err)

	requests, err := repo.GetBookRequests()
	require.NoError(t, err)
	require.Len(t, requests, 2)

	// Newest first
	assert.Equal(t, "Second", requests[0].Title)
	assert.Equal(t, "student1", requests[0].RequestedByUsername)
}

func TestGetBookRequests_DeletedUserNullsRequester(t *testing.T) {
	repo := setupTestRepo(t)
	user := createTestStudent(t, repo)

	created, err := repo.CreateBookRequest(&models.BookRequest{Title: "Orphaned", RequestedBy: &user.ID})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(user.ID))

	loaded, err := repo.GetBookRequestByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.RequestedBy)
	assert.Equal(t, "", loaded.RequestedByUsername)
	assert.Equal(t, "Orphaned", loaded.Title)
}

func TestUpdateBookRequestStatus(t *testing.T) {
	repo := setupTestRepo(t)
	user := createTestStudent(t, repo)

	created, err := repo.CreateBookRequest(&models.BookRequest{Title: "Pending", RequestedBy: &user.ID})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateBookRequestStatus(created.ID, models.RequestStatusApproved))

	loaded, err := repo.GetBookRequestByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, loaded.Status)
}

func TestUpdateBookRequestStatus_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.UpdateBookRequestStatus(9999, models.RequestStatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}
