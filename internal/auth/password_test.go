package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "correct-horse-battery-staple"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// Verify the hash is in bcrypt format
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("hash should be a bcrypt string, got %q", hash)
	}

	if !VerifyPassword(password, hash) {
		t.Error("VerifyPassword() should return true for correct password")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword() should return false for wrong password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "same-password"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("two hashes of the same password should have different salts")
	}
}

func TestVerifyPassword_MalformedStoredHash(t *testing.T) {
	// A corrupt stored hash must read as "no match", never as an error
	// surfaced to the caller.
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "not-a-hash"},
		{"wrong algorithm", "$argon2id$v=19$m=65536,t=3,p=1$salt$hash"},
		{"truncated", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("password", tt.hash) {
				t.Error("VerifyPassword() should return false for malformed stored hash")
			}
		})
	}
}
