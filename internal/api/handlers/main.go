// filepath: internal/api/handlers/main.go
package handlers

import (
	"horizonlib/internal/config"
	"horizonlib/internal/services"
	"horizonlib/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// Depend on interfaces, not concrete structs
	User    services.UserService
	Token   auth.TokenService
	Book    services.BookService
	Search  services.SearchService
	Request services.RequestService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	user services.UserService,
	token auth.TokenService,
	book services.BookService,
	search services.SearchService,
	request services.RequestService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		User:    user,
		Token:   token,
		Book:    book,
		Search:  search,
		Request: request,
		Cfg:     cfg,
	}
}
