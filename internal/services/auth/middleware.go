// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"
)

type contextKey string

// identityKey is the request-context key holding the authenticated Identity.
const identityKey contextKey = "identity"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
}

// IdentityFromContext extracts the authenticated Identity from a request
// context, if one was attached by the middleware.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok
}

// ContextWithIdentity attaches an Identity to a context. Exposed for tests.
func ContextWithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// Middleware provides authentication and authorization middleware.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// Authenticate checks for a valid JWT Bearer token and attaches the decoded
// Identity to the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Access denied. No authentication token provided.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := m.Token.Validate(tokenString)
		if err != nil {
			logging.Log.Warnf("Authenticate: invalid bearer token: %v", err)
			if errors.Is(err, ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "Session expired. Please log in again.")
			} else {
				writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		ctx := ContextWithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole restricts a handler to identities carrying one of the given roles.
func (m *Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				logging.Log.Warnf("RequireRole: no identity in context for %s", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logging.Log.Warnf("RequireRole: access denied for user %d (role %s) on %s",
				identity.UserID, identity.Role, r.URL.Path)
			writeError(w, http.StatusForbidden, "Forbidden: You do not have permission to access this resource")
		})
	}
}

// Protect wraps a handler with authentication and a role check. Used by the
// router to guard individual routes.
func (m *Middleware) Protect(h http.HandlerFunc, roles ...string) http.Handler {
	return m.Authenticate(m.RequireRole(roles...)(h))
}
