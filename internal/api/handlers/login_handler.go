// filepath: internal/api/handlers/login_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// LoginRequest is the credential payload for the login endpoints.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  UserSummary `json:"user"`
}

// UserSummary is the public subset of a user record.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LibrarianLogin godoc
// @Summary      Librarian login
// @Description  Exchanges librarian credentials for a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Username and password"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Missing fields or invalid credentials"
// @Failure      500 {object} ErrorResponse
// @Router       /api/librarian/login [post]
func (h *Handlers) LibrarianLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleLibrarian)
}

// StudentLogin godoc
// @Summary      Student login
// @Description  Exchanges student credentials for a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Username and password"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Missing fields or invalid credentials"
// @Failure      500 {object} ErrorResponse
// @Router       /api/student/login [post]
func (h *Handlers) StudentLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleStudent)
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the presented session token for the rest of its lifetime.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	// Authenticate already verified this token, so the header is present.
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.Token.Revoke(tokenString); err != nil {
		logging.Log.Errorf("logout: failed to revoke token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Logged out"})
}

// login verifies credentials against a single expected role. Unknown user,
// wrong role and wrong password all produce the same response so the
// endpoint does not leak which usernames exist.
func (h *Handlers) login(w http.ResponseWriter, r *http.Request, role string) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.User.GetUserByUsername(req.Username)
	if err != nil || user.Role != role {
		logging.Log.Warnf("login: rejected %s attempt for %q", role, req.Username)
		respondWithError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logging.Log.Warnf("login: bad password for %q", req.Username)
		respondWithError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	token, err := h.Token.Issue(user)
	if err != nil {
		logging.Log.Errorf("login: failed to issue token for %q: %v", req.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		Role:  user.Role,
		User:  UserSummary{ID: user.ID, Username: user.Username},
	})
}
