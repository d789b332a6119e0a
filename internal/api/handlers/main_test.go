// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"net/http/httptest"
	"testing"

	"horizonlib/internal/config"
	"horizonlib/internal/services/mocks"

	"github.com/gorilla/mux"
)

// testMocks bundles the mocked services behind a Handlers instance.
type testMocks struct {
	User    *mocks.MockUserService
	Token   *mocks.MockTokenService
	Book    *mocks.MockBookService
	Search  *mocks.MockSearchService
	Request *mocks.MockRequestService
}

// setupHandlersTest creates a test server with all services mocked. Routes
// are mounted without the auth middleware; identity-dependent handlers are
// exercised directly with a prepared context instead.
func setupHandlersTest(t *testing.T) (*httptest.Server, *testMocks) {
	t.Helper()

	m := &testMocks{
		User:    new(mocks.MockUserService),
		Token:   new(mocks.MockTokenService),
		Book:    new(mocks.MockBookService),
		Search:  new(mocks.MockSearchService),
		Request: new(mocks.MockRequestService),
	}

	cfg := &config.Config{}
	if err := cfg.ParseAndValidate(); err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}

	h := NewHandlers(m.User, m.Token, m.Book, m.Search, m.Request, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/api/librarian/login", h.LibrarianLogin).Methods("POST")
	r.HandleFunc("/api/student/login", h.StudentLogin).Methods("POST")
	r.HandleFunc("/api/books", h.GetBooks).Methods("GET")
	r.HandleFunc("/api/books/search", h.SearchBooks).Methods("GET")
	r.HandleFunc("/api/books/{id:[0-9]+}", h.GetBook).Methods("GET")
	r.HandleFunc("/api/librarian/books", h.CreateBook).Methods("POST")
	r.HandleFunc("/api/librarian/books/{id:[0-9]+}", h.DeleteBook).Methods("DELETE")
	r.HandleFunc("/api/search-stats/track-search", h.TrackSearch).Methods("POST")
	r.HandleFunc("/api/search-stats/most-searched", h.MostSearched).Methods("GET")
	r.HandleFunc("/api/search-stats/clear-history", h.ClearSearchHistory).Methods("DELETE")
	r.HandleFunc("/api/book-requests", h.ListBookRequests).Methods("GET")
	r.HandleFunc("/api/book-requests/{id:[0-9]+}/status", h.UpdateRequestStatus).Methods("PATCH")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, m
}
