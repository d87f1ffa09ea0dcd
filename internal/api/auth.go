package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alertsys/alert-console/internal/auth"
)

// secondsPerHour converts the configured token TTL to cookie max-age.
const secondsPerHour = 3600

// loginRequest is the request body for POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /api/login.
type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// userResponse is the public view of a user account. The password hash
// never leaves the server.
type userResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Department string    `json:"department"`
	Role       auth.Role `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

func newUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Department: u.Department,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

// handleLogin verifies credentials and issues a session token.
//
// The token is returned in the response body and also set as an HttpOnly
// cookie so browser clients stay authenticated without storing the token
// in script-accessible state. Unknown usernames and wrong passwords
// produce the same 401 response.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	user, err := s.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeUnauthorized(w, "Invalid username or password")
			return
		}
		s.logger.Error("login lookup failed", "error", err)
		writeInternalError(w, "Database error")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeUnauthorized(w, "Invalid username or password")
		return
	}

	token, err := auth.IssueToken(user, s.authCfg.JWTSecret, s.authCfg.TokenTTLHours)
	if err != nil {
		s.logger.Error("token issue failed", "error", err, "username", user.Username)
		writeInternalError(w, "Failed to create token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.authCfg.TokenTTLHours * secondsPerHour,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.Info("login", "username", user.Username, "role", user.Role)

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  newUserResponse(user),
	})
}

// handleLogout clears the session cookie.
//
// Tokens are stateless, so a bearer token held outside the cookie stays
// valid until it expires; logout only ends the browser session.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// handleMe returns the identity of the authenticated caller, read entirely
// from the verified token claims. No database round trip.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "Missing authentication token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":       claims.Subject,
		"username": claims.Username,
		"role":     claims.Role,
	})
}
