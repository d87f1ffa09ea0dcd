package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing. Fixed for the
// lifetime of a deployment; existing hashes embed their own cost so a
// future bump only affects new passwords.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password with bcrypt. Each call salts
// independently, so hashing the same password twice yields different
// output. An error here means the environment is broken (RNG failure)
// and is not retryable.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash.
// It returns false for a wrong password and also for a malformed stored
// hash — a corrupt hash is an internal condition that must read as
// "no match" rather than surfacing to the caller.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
