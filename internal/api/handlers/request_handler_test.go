// filepath: internal/api/handlers/request_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"horizonlib/internal/config"
	"horizonlib/internal/models"
	"horizonlib/internal/services"
	"horizonlib/internal/services/auth"
	"horizonlib/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// submitAs calls the submit handler directly with an identity planted in the
// request context, standing in for the auth middleware.
func submitAs(t *testing.T, h *Handlers, identity *models.Identity, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/book-requests", bytes.NewReader(body))
	if identity != nil {
		req = req.WithContext(auth.ContextWithIdentity(req.Context(), identity))
	}

	rec := httptest.NewRecorder()
	h.SubmitBookRequest(rec, req)
	return rec
}

func newRequestHandlers(t *testing.T) (*Handlers, *mocks.MockRequestService) {
	t.Helper()

	mockRequest := new(mocks.MockRequestService)
	cfg := &config.Config{}
	require.NoError(t, cfg.ParseAndValidate())

	h := NewHandlers(nil, nil, nil, nil, mockRequest, cfg)
	return h, mockRequest
}

func TestSubmitBookRequest_NoIdentity(t *testing.T) {
	h, _ := newRequestHandlers(t)

	rec := submitAs(t, h, nil, SubmitRequestBody{Title: "Dune"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitBookRequest_Success(t *testing.T) {
	h, mockRequest := newRequestHandlers(t)

	identity := &models.Identity{UserID: 7, Role: models.RoleStudent}
	expected := &models.BookRequest{ID: 1, Title: "Dune", Status: models.RequestStatusPending}

	mockRequest.On("Submit", int64(7), mock.MatchedBy(func(in services.RequestInput) bool {
		return in.Title == "Dune"
	})).Return(expected, nil)

	rec := submitAs(t, h, identity, SubmitRequestBody{Title: "Dune"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp RequestResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, models.RequestStatusPending, resp.Data.Status)
}

func TestSubmitBookRequest_MissingTitle(t *testing.T) {
	h, mockRequest := newRequestHandlers(t)

	identity := &models.Identity{UserID: 7, Role: models.RoleStudent}
	mockRequest.On("Submit", int64(7), mock.Anything).
		Return(nil, fmt.Errorf("%w: title is required", services.ErrValidation))

	rec := submitAs(t, h, identity, SubmitRequestBody{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookRequests(t *testing.T) {
	server, m := setupHandlersTest(t)

	m.Request.On("List").Return([]models.BookRequest{
		{ID: 2, Title: "Second", Status: models.RequestStatusPending, RequestedByUsername: "student1"},
		{ID: 1, Title: "First", Status: models.RequestStatusApproved, RequestedByUsername: "student1"},
	}, nil)

	resp, err := http.Get(server.URL + "/api/book-requests")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listResp RequestListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listResp))
	assert.True(t, listResp.Success)
	require.Len(t, listResp.Data, 2)
	assert.Equal(t, "student1", listResp.Data[0].RequestedByUsername)
}

func TestUpdateRequestStatus_Success(t *testing.T) {
	server, m := setupHandlersTest(t)

	m.Request.On("UpdateStatus", int64(3), models.RequestStatusOrdered).Return(nil)

	body, _ := json.Marshal(UpdateStatusBody{Status: models.RequestStatusOrdered})
	req, err := http.NewRequest("PATCH", server.URL+"/api/book-requests/3/status", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateRequestStatus_UnknownStatus(t *testing.T) {
	server, m := setupHandlersTest(t)

	m.Request.On("UpdateStatus", int64(3), "lost").
		Return(fmt.Errorf("%w: unknown status 'lost'", services.ErrValidation))

	body, _ := json.Marshal(UpdateStatusBody{Status: "lost"})
	req, err := http.NewRequest("PATCH", server.URL+"/api/book-requests/3/status", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRequestStatus_NotFound(t *testing.T) {
	server, m := setupHandlersTest(t)

	m.Request.On("UpdateStatus", int64(99), models.RequestStatusApproved).
		Return(fmt.Errorf("%w: request 99", services.ErrNotFound))

	body, _ := json.Marshal(UpdateStatusBody{Status: models.RequestStatusApproved})
	req, err := http.NewRequest("PATCH", server.URL+"/api/book-requests/99/status", bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
