package middleware

import (
	"strings"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// contextKeyClaims is the echo context key holding the validated token claims.
const contextKeyClaims = "authClaims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the typed claims on the
// request context. Handlers downstream can rely on ClaimsFrom succeeding.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
		}

		c.Set(contextKeyClaims, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing")
			}

			if claims.Role != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("role " + string(requiredRole) + " required")
			}

			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Authenticate.
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.Claims)

	return claims, ok
}
