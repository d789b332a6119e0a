// filepath: internal/services/auth/interfaces.go
package auth

import "horizonlib/internal/models"

// TokenService defines the contract for JWT operations.
type TokenService interface {
	Issue(user *models.User) (token string, err error)
	Validate(tokenString string) (*models.Identity, error)
	Revoke(tokenString string) error
}
