package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"weighter/config"
	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/service"
	"weighter/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-middleware"
	cfg.JWT.Issuer = "weighter-test"
	cfg.JWT.Audience = "weighter-clients"
	cfg.JWT.ExpirationMinutes = 60

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func newTestContext(t *testing.T, authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/weights", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	token, _, err := tokenSvc.Issue(service.TokenIdentity{
		UserID:   42,
		Username: "tester",
		Email:    "test@example.com",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)

	c := newTestContext(t, "Bearer "+token)
	called := false

	err = m.Authenticate(passThrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	claims, ok := ClaimsFrom(c)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "")
	called := false

	err := m.Authenticate(passThrough(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "Basic dXNlcjpwYXNz")
	called := false

	err := m.Authenticate(passThrough(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "Bearer not.a.token")
	called := false

	err := m.Authenticate(passThrough(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_RequireRole_AllowsMatchingRole(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "")
	c.Set(contextKeyClaims, &service.Claims{UserID: 1, Role: entity.RoleAdmin})
	called := false

	err := m.RequireRole(entity.RoleAdmin)(passThrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireRole_RefusesOtherRole(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "")
	c.Set(contextKeyClaims, &service.Claims{UserID: 1, Role: entity.RoleUser})
	called := false

	err := m.RequireRole(entity.RoleAdmin)(passThrough(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireRole_RefusesWithoutClaims(t *testing.T) {
	m := NewAuthMiddleware(newTestTokenService(t))

	c := newTestContext(t, "")
	called := false

	err := m.RequireRole(entity.RoleAdmin)(passThrough(&called))(c)

	require.Error(t, err)
	assert.False(t, called)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
