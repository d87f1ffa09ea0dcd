package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alertsys/alert-console/internal/auth"
	"github.com/alertsys/alert-console/internal/infrastructure/config"
	"github.com/alertsys/alert-console/internal/infrastructure/database"
	"github.com/alertsys/alert-console/internal/infrastructure/logging"
)

// testJWTSecret is a fixed signing secret for tests (32+ characters).
const testJWTSecret = "test-secret-key-at-least-32-characters-long"

// setupTestDB creates an in-memory SQLite database with the users schema.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			department TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;
		CREATE INDEX idx_users_created_at ON users(created_at);
	`
	if _, execErr := sqlDB.Exec(schema); execErr != nil {
		sqlDB.Close()
		t.Fatalf("failed to create test schema: %v", execErr)
	}

	db := &database.DB{DB: sqlDB}
	t.Cleanup(func() { db.Close() })
	return db
}

// testServer creates a Server backed by in-memory SQLite.
func testServer(t *testing.T) *Server {
	t.Helper()

	db := setupTestDB(t)
	repo := auth.NewUserRepository(db.DB)
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")

	srv, err := New(Deps{
		Config: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 0,
			Timeouts: config.ServerTimeoutConfig{
				Read:  5,
				Write: 5,
				Idle:  5,
			},
		},
		Auth: config.AuthConfig{
			JWTSecret:     testJWTSecret,
			TokenTTLHours: 24,
		},
		Logger:  log,
		DB:      db,
		Users:   repo,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	return srv
}

// createTestUser inserts a user with a real bcrypt hash and returns it.
func createTestUser(t *testing.T, repo auth.UserRepository, username, password string, role auth.Role) *auth.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	user := &auth.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create test user %q: %v", username, err)
	}
	return user
}

// testToken issues a signed session token for the given user.
func testToken(t *testing.T, user *auth.User) string {
	t.Helper()

	token, err := auth.IssueToken(user, testJWTSecret, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return token
}

func TestNew_RequiresDependencies(t *testing.T) {
	db := setupTestDB(t)
	repo := auth.NewUserRepository(db.DB)
	log := logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")
	authCfg := config.AuthConfig{JWTSecret: testJWTSecret, TokenTTLHours: 24}

	tests := []struct {
		name string
		deps Deps
	}{
		{"missing logger", Deps{Auth: authCfg, DB: db, Users: repo}},
		{"missing database", Deps{Auth: authCfg, Logger: log, Users: repo}},
		{"missing user repository", Deps{Auth: authCfg, Logger: log, DB: db}},
		{"missing jwt secret", Deps{Logger: log, DB: db, Users: repo}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.deps); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}

	// Client-supplied ID is echoed back
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "client-id-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-id-123" {
		t.Errorf("X-Request-ID = %q, want client-id-123", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)
	router := srv.buildRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
