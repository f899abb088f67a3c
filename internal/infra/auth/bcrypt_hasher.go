// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bloom/config"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt. bcrypt embeds a per-call salt in the hash, so the same
// plaintext never hashes to the same stored secret twice.
type bcryptHasher struct {
	cost              int
	minPasswordLength int
}

// NewBcryptHasher is the constructor for bcryptHasher. The work factor and
// minimum password length come from configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	minLength := 1
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			minLength = cfg.Auth.MinPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, minPasswordLength: minLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. A stored value
// that is not a valid bcrypt hash compares as a mismatch, never a match.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength enforces the configured minimum password length.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if len(password) < h.minPasswordLength {
		return domainerrors.ErrPasswordStrength.
			WithDetails(fmt.Sprintf("password must be at least %d characters", h.minPasswordLength))
	}

	return nil
}
