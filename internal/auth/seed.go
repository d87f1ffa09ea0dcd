package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Default admin credentials created on first boot. This is a seeding
// affordance so a fresh install is reachable, not a security feature —
// operators are expected to change the password immediately.
const (
	DefaultAdminUsername   = "admin"
	defaultAdminPassword   = "admin123"
	defaultAdminDepartment = "System Administration"
)

// SeedAdmin creates the default admin account if it does not exist.
// Returns true if an account was created.
func SeedAdmin(ctx context.Context, userRepo UserRepository, logger *slog.Logger) (bool, error) {
	_, err := userRepo.GetByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		logger.Info("admin account exists, skipping seed")
		return false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return false, fmt.Errorf("checking for admin account: %w", err)
	}

	hash, err := HashPassword(defaultAdminPassword)
	if err != nil {
		return false, fmt.Errorf("hashing seed password: %w", err)
	}

	admin := &User{
		Username:     DefaultAdminUsername,
		Department:   defaultAdminDepartment,
		PasswordHash: hash,
		Role:         RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("creating seed admin: %w", err)
	}

	logger.Warn("default admin account created",
		"username", DefaultAdminUsername,
		"password", defaultAdminPassword,
		"action_required", "change this password immediately",
	)

	return true, nil
}
