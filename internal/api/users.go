package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertsys/alert-console/internal/auth"
)

// createUserRequest is the request body for POST /api/users.
type createUserRequest struct {
	Username   string    `json:"username"`
	Department string    `json:"department"`
	Password   string    `json:"password"`
	Role       auth.Role `json:"role"`
}

// handleListUsers returns all user accounts, newest first.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		writeInternalError(w, "Failed to fetch users")
		return
	}

	responses := make([]userResponse, 0, len(users))
	for i := range users {
		responses = append(responses, newUserResponse(&users[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"users": responses,
		"count": len(responses),
	})
}

// handleCreateUser creates a new user account.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeBadRequest(w, "Username and password are required")
		return
	}

	if !auth.IsValidUsername(req.Username) {
		writeBadRequest(w, "Username may only contain letters, digits, dots, underscores, and hyphens")
		return
	}

	if req.Role == "" {
		req.Role = auth.RoleUser
	}
	if !auth.IsValidRole(req.Role) {
		writeBadRequest(w, "Invalid role: must be user or admin")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		writeInternalError(w, "Failed to create user")
		return
	}

	user := &auth.User{
		Username:     req.Username,
		Department:   req.Department,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrUsernameExists) {
			writeConflict(w, "Username already exists")
			return
		}
		s.logger.Error("create user failed", "error", err, "username", req.Username)
		writeInternalError(w, "Failed to create user")
		return
	}

	claims := claimsFromContext(r.Context())
	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role,
		"created_by", claims.Subject,
	)

	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

// handleDeleteUser removes a user account. Callers cannot delete
// themselves; that check runs before the account lookup so the response
// never depends on directory state.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	claims := claimsFromContext(r.Context())

	if id == claims.Subject {
		writeBadRequest(w, "Cannot delete your own account")
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		s.logger.Error("delete user failed", "error", err, "user_id", id)
		writeInternalError(w, "Failed to delete user")
		return
	}

	s.logger.Info("user deleted", "user_id", id, "deleted_by", claims.Subject)

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
