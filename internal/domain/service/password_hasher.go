// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key derivation scheme, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest. Malformed
	// digests report false, never an error, so storage corruption is
	// indistinguishable from a wrong password.
	Check(password, digest string) bool
}
