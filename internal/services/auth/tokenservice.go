// filepath: internal/services/auth/tokenservice.go
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"horizonlib/internal/config"
	"horizonlib/internal/models"
	"horizonlib/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by Validate. Expired and malformed tokens are both
// unauthenticated but carry distinguishing messages for the client.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenRevoked   = errors.New("token revoked")
)

// sessionClaims defines the custom claims for a session token.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

// tokenService implements the TokenService interface.
type tokenService struct {
	cfg  *config.Config
	repo *repository.Repository
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config, repo *repository.Repository) TokenService {
	return &tokenService{cfg: cfg, repo: repo}
}

// Issue creates and signs a new session token carrying the user's id and
// role. Tokens expire after the configured duration (1 hour by default);
// expiry and the revocation denylist are the only invalidation mechanisms.
func (s *tokenService) Issue(user *models.User) (string, error) {
	expiry := time.Now().Add(time.Minute * time.Duration(s.cfg.JWT.TokenDurationMin))

	// Random jti so individual tokens can be revoked
	jtiBytes := make([]byte, 16)
	if _, err := rand.Read(jtiBytes); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	claims := &sessionClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "horizonlib",
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        hex.EncodeToString(jtiBytes),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

// Validate checks a session token and returns the identity it carries.
// It fails with ErrTokenExpired past expiry, ErrTokenMalformed on a bad
// signature or structure, and ErrTokenRevoked for denylisted tokens.
func (s *tokenService) Validate(tokenString string) (*models.Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	if claims.Role != models.RoleStudent && claims.Role != models.RoleLibrarian {
		return nil, ErrTokenMalformed
	}

	revoked, err := s.repo.IsTokenRevoked(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &models.Identity{UserID: userID, Role: claims.Role}, nil
}

// Revoke denylists a token by its id for the remainder of its lifetime.
// The signature must verify, but an already expired token is accepted.
func (s *tokenService) Revoke(tokenString string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return ErrTokenMalformed
	}

	if claims.ExpiresAt == nil || claims.ID == "" {
		return ErrTokenMalformed
	}
	return s.repo.RevokeToken(claims.ID, claims.ExpiresAt.Time)
}
