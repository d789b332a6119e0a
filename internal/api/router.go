// filepath: internal/api/router.go
package api

import (
	"net/http"

	"horizonlib/internal/api/handlers"
	"horizonlib/internal/models"
	"horizonlib/internal/services/auth"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router. Routes needing a session token are
// wrapped individually with am.Protect, since the same path can carry
// different role requirements per method (POST /api/book-requests is for
// students, GET is for librarians).
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, uploadDir string) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded cover images are served as static files
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	addAuthRoutes(r, h, am)
	addCatalogRoutes(r, h, am)
	addSearchRoutes(r, h, am)
	addRequestRoutes(r, h, am)

	return r
}

// addAuthRoutes configures the login and logout endpoints.
func addAuthRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	r.HandleFunc("/api/librarian/login", h.LibrarianLogin).Methods("POST")
	r.HandleFunc("/api/student/login", h.StudentLogin).Methods("POST")
	r.Handle("/api/logout",
		am.Protect(h.Logout, models.RoleStudent, models.RoleLibrarian)).Methods("POST")
}

// addCatalogRoutes configures the public catalog and the librarian CRUD
// endpoints.
func addCatalogRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	// Public, read-only
	r.HandleFunc("/api/books", h.GetBooks).Methods("GET")
	r.HandleFunc("/api/books/search", h.SearchBooks).Methods("GET")
	r.HandleFunc("/api/books/{id:[0-9]+}", h.GetBook).Methods("GET")

	// Librarian management
	r.Handle("/api/librarian/books",
		am.Protect(h.GetLibrarianBooks, models.RoleLibrarian)).Methods("GET")
	r.Handle("/api/librarian/books",
		am.Protect(h.CreateBook, models.RoleLibrarian)).Methods("POST")
	r.Handle("/api/librarian/books/{id:[0-9]+}",
		am.Protect(h.UpdateBook, models.RoleLibrarian)).Methods("PUT")
	r.Handle("/api/librarian/books/{id:[0-9]+}",
		am.Protect(h.DeleteBook, models.RoleLibrarian)).Methods("DELETE")
}

// addSearchRoutes configures the search-frequency endpoints. Tracking and
// the report are public; only clearing is restricted.
func addSearchRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	r.HandleFunc("/api/search-stats/track-search", h.TrackSearch).Methods("POST")
	r.HandleFunc("/api/search-stats/most-searched", h.MostSearched).Methods("GET")
	r.Handle("/api/search-stats/clear-history",
		am.Protect(h.ClearSearchHistory, models.RoleLibrarian)).Methods("DELETE")
}

// addRequestRoutes configures the book-request workflow endpoints.
func addRequestRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	r.Handle("/api/book-requests",
		am.Protect(h.SubmitBookRequest, models.RoleStudent)).Methods("POST")
	r.Handle("/api/book-requests",
		am.Protect(h.ListBookRequests, models.RoleLibrarian)).Methods("GET")
	r.Handle("/api/book-requests/{id:[0-9]+}/status",
		am.Protect(h.UpdateRequestStatus, models.RoleLibrarian)).Methods("PATCH")
}
