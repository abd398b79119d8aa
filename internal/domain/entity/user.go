// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The store assigns the integer ID on
// creation; email and username are globally unique login identifiers.
type User struct {
	ID             int64      // Store-assigned identifier, immutable after creation.
	Email          string     // Unique contact email, usable as a login identifier.
	Username       string     // Unique display/login name.
	PasswordDigest string     // Salted PBKDF2 digest. Never the plaintext, never serialized outward.
	Role           Role       // Authorization tag, defaults to RoleUser at creation.
	IsActive       bool       // Login is refused while false.
	CreatedAt      time.Time  // Set once by the store.
	LastLoginAt    *time.Time // Nil until the first successful login.
}
