// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping
// the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls
	// with the same plaintext produce different hashes.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. A malformed
	// stored hash fails closed.
	Check(password, hash string) bool

	// ValidateStrength rejects passwords that do not meet the configured
	// minimum requirements.
	ValidateStrength(password string) error
}
