package auth

import (
	"context"
	"errors"
	"testing"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &User{
		Username:     "alice",
		Department:   "Operations",
		PasswordHash: "hash-placeholder",
		Role:         RoleUser,
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == "" {
		t.Fatal("Create() should generate an ID")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Create() should set timestamps")
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Username != "alice" || got.Department != "Operations" || got.Role != RoleUser {
		t.Errorf("GetByID() = %+v, want alice/Operations/user", got)
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("GetByUsername().ID = %q, want %q", byName.ID, user.ID)
	}
	if byName.PasswordHash != "hash-placeholder" {
		t.Error("repository should return the stored password hash for verification")
	}
}

func TestUserRepository_GetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrUserNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "missing-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &User{Username: "bob", PasswordHash: "h1", Role: RoleUser}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := &User{Username: "bob", PasswordHash: "h2", Role: RoleUser}
	if err := repo.Create(ctx, second); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("Create() duplicate error = %v, want ErrUsernameExists", err)
	}
}

func TestUserRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		u := &User{Username: name, PasswordHash: "h", Role: RoleUser}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	// Spread creation times apart; same-second inserts would otherwise tie.
	stamps := map[string]string{
		"first":  "2026-01-01T10:00:00Z",
		"second": "2026-01-02T10:00:00Z",
		"third":  "2026-01-03T10:00:00Z",
	}
	for name, ts := range stamps {
		if _, err := db.Exec("UPDATE users SET created_at = ? WHERE username = ?", ts, name); err != nil {
			t.Fatalf("updating created_at: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("List() returned %d users, want 3", len(users))
	}

	want := []string{"third", "second", "first"}
	for i, u := range users {
		if u.Username != want[i] {
			t.Errorf("List()[%d].Username = %q, want %q", i, u.Username, want[i])
		}
	}
}

func TestUserRepository_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if users == nil {
		t.Error("List() should return an empty slice, not nil")
	}
	if len(users) != 0 {
		t.Errorf("List() returned %d users, want 0", len(users))
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &User{Username: "doomed", PasswordHash: "h", Role: RoleUser}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Error("user should be gone after Delete()")
	}

	if err := repo.Delete(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Delete() of missing user error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	u := &User{Username: "only", PasswordHash: "h", Role: RoleAdmin}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}
