// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"
)

// Compile-time check to ensure the interface is implemented.
var _ UserService = (*userService)(nil)

// userService handles business logic for credential records.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// GetUserByUsername retrieves a user by their username.
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	return s.Repo.GetUserByUsername(username)
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(id int64) (*models.User, error) {
	return s.Repo.GetUserByID(id)
}

// CreateUser provisions a new credential record. Used by the CLI only; the
// API exposes no registration endpoint.
func (s *userService) CreateUser(args repository.UserCreateArgs) (*models.User, error) {
	if args.Username == "" || args.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if args.Role != models.RoleStudent && args.Role != models.RoleLibrarian {
		return nil, fmt.Errorf("%w: role must be %q or %q", ErrValidation, models.RoleStudent, models.RoleLibrarian)
	}

	logging.Log.Debugf("UserService: attempting to create user '%s' (%s)", args.Username, args.Role)
	createdUser, err := s.Repo.CreateUser(&args)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, fmt.Errorf("%w: username is taken", ErrConflict)
		}
		logging.Log.Errorf("UserService: failed to create user '%s': %v", args.Username, err)
		return nil, fmt.Errorf("failed to create user")
	}
	return createdUser, nil
}
