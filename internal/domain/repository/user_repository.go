// Package repository defines the persistence contracts the use cases depend on.
package repository

import (
	"context"
	"time"

	"weighter/internal/domain/entity"
	"weighter/internal/errors"
)

// Sentinel errors returned by repository implementations. Use cases translate
// them into the caller-visible taxonomy.
var (
	// ErrUserNotFound signals a lookup miss.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail and ErrDuplicateUsername surface the store's unique
	// constraints at insert time. Registration relies on these instead of a
	// racy existence pre-check.
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// FindByID retrieves a user by their store-assigned identifier.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmailOrUsername retrieves the first user whose email or username
	// equals the given identifier (both columns are unique, so at most one
	// row can match either).
	FindByEmailOrUsername(ctx context.Context, identifier string) (*entity.User, error)

	// Create inserts a new user and fills in the generated ID and CreatedAt.
	// Unique constraint violations map to ErrDuplicateEmail/ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the user's last successful login time.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// Update persists role/active changes made by an administrator.
	Update(ctx context.Context, user *entity.User) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// Delete removes a user by ID.
	Delete(ctx context.Context, id int64) error
}
