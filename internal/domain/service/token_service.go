package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weighter/internal/domain/entity"
)

// Claims is the fixed identity snapshot embedded in every session token.
// Adding or forgetting a field here is a compile-visible change; there is no
// generic claim bag to smuggle extra data through.
type Claims struct {
	UserID   int64       `json:"uid"`
	Username string      `json:"name"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the claim fields needed to mint a fresh token, dropping
// the registered (time-bound) part.
func (c *Claims) Identity() TokenIdentity {
	return TokenIdentity{
		UserID:   c.UserID,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
}

// TokenIdentity is the point-in-time user snapshot a token is issued for.
type TokenIdentity struct {
	UserID   int64
	Username string
	Email    string
	Role     entity.Role
}

// IdentityFromUser copies the four identity fields from a user entity.
// Never carries the password digest.
func IdentityFromUser(user *entity.User) TokenIdentity {
	return TokenIdentity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// Issue signs a token carrying the identity with a fresh expiry and
	// returns the compact serialization plus the expiry instant.
	Issue(identity TokenIdentity) (token string, expiresAt time.Time, err error)

	// Validate verifies signature, issuer, audience and expiry, and returns
	// the embedded claims.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
