// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"weighter/internal/domain/entity"
	"weighter/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
// The identifier matches either the email or the username, exactly.
type LoginInput struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is the issuance response shared by register, login and refresh.
// It never carries the password digest.
type AuthOutput struct {
	UserID    int64       `json:"userId"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// UserSummary is the profile shape returned to the authenticated user.
type UserSummary struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        entity.Role `json:"role"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
}

// AuthUsecase defines the authentication workflow the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new active user with role "User" and issues a token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates by email or username and password, stamps the
	// last-login time and issues a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh re-issues a token from already-validated claims, without a
	// password.
	Refresh(ctx context.Context, claims *service.Claims) (*AuthOutput, error)

	// CurrentUser returns the profile of the authenticated user.
	CurrentUser(ctx context.Context, userID int64) (*UserSummary, error)
}
