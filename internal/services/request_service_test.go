// filepath: internal/services/request_service_test.go
package services_test

import (
	"path/filepath"
	"testing"

	"horizonlib/internal/config"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"
	"horizonlib/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRequestService(t *testing.T) (services.RequestService, int64) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DatabasePath = filepath.Join(t.TempDir(), "test.db")

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchemaBootstrapped())
	t.Cleanup(func() { repo.Close() })

	user, err := repo.CreateUser(&repository.UserCreateArgs{
		Username: "student1",
		Password: "secret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	return services.NewRequestService(repo), user.ID
}

func TestSubmit(t *testing.T) {
	svc, userID := setupRequestService(t)

	author := "  Herbert  "
	request, err := svc.Submit(userID, services.RequestInput{
		Title:  "  Dune  ",
		Author: &author,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune", request.Title)
	require.NotNil(t, request.Author)
	assert.Equal(t, "Herbert", *request.Author)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	require.NotNil(t, request.RequestedBy)
	assert.Equal(t, userID, *request.RequestedBy)
}

func TestSubmit_MissingTitle(t *testing.T) {
	svc, userID := setupRequestService(t)

	_, err := svc.Submit(userID, services.RequestInput{Title: "   "})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestSubmit_BlankOptionalFieldsBecomeNull(t *testing.T) {
	svc, userID := setupRequestService(t)

	blank := "   "
	request, err := svc.Submit(userID, services.RequestInput{
		Title:  "Dune",
		Reason: &blank,
	})
	require.NoError(t, err)
	assert.Nil(t, request.Reason)
}

func TestUpdateStatus(t *testing.T) {
	svc, userID := setupRequestService(t)

	request, err := svc.Submit(userID, services.RequestInput{Title: "Dune"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(request.ID, models.RequestStatusOrdered))

	requests, err := svc.List()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.RequestStatusOrdered, requests[0].Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, userID := setupRequestService(t)

	request, err := svc.Submit(userID, services.RequestInput{Title: "Dune"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateStatus(request.ID, "lost"), services.ErrValidation)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := setupRequestService(t)

	assert.ErrorIs(t, svc.UpdateStatus(9999, models.RequestStatusApproved), services.ErrNotFound)
}
