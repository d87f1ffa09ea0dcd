package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertsys/alert-console/internal/webui"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Login is the only other unauthenticated endpoint
		r.Post("/login", s.handleLogin)

		// Routes requiring a valid session token
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleMe)
			r.Get("/system-info", s.handleSystemInfo)

			// User administration (admin role required)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)

				r.Get("/users", s.handleListUsers)
				r.Post("/users", s.handleCreateUser)
				r.Delete("/users/{id}", s.handleDeleteUser)
			})
		})
	})

	// Frontend bundle (embedded via go:embed, filesystem in dev mode)
	r.Handle("/*", webui.Handler(s.webDir))

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := s.db.HealthCheck(r.Context()); err != nil {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"version": s.version,
	})
}
