package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighter/config"
	"weighter/internal/domain/entity"
	"weighter/internal/domain/service"
)

const (
	testSecret   = "test_secret_key_very_long_for_testing"
	testIssuer   = "weighter"
	testAudience = "weighter-clients"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.Issuer = testIssuer
	cfg.JWT.Audience = testAudience
	cfg.JWT.ExpirationMinutes = 60

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testIdentity() service.TokenIdentity {
	return service.TokenIdentity{
		UserID:   42,
		Username: "alice",
		Email:    "a@x.com",
		Role:     entity.RoleUser,
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t)

	token, expiresAt, err := svc.Issue(testIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	otherCfg.JWT.Issuer = testIssuer
	otherCfg.JWT.Audience = testAudience
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := other.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsIssuerAudienceMismatch(t *testing.T) {
	svc := newTestTokenService(t)

	// Same secret, different issuer/audience configuration.
	foreignCfg := &config.Config{}
	foreignCfg.JWT.Secret = testSecret
	foreignCfg.JWT.Issuer = "someone-else"
	foreignCfg.JWT.Audience = "other-clients"
	foreign, err := NewJWTService(foreignCfg)
	require.NoError(t, err)

	token, _, err := foreign.Issue(testIdentity())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// signAt hand-crafts a token whose clock fields are shifted, to probe the
// expiry window without sleeping.
func signAt(t *testing.T, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	claims := &service.Claims{
		UserID:   42,
		Username: "alice",
		Email:    "a@x.com",
		Role:     entity.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	svc := newTestTokenService(t)
	ttl := time.Hour

	// Issued 59 minutes ago with a 60 minute TTL: still inside the window.
	fresh := signAt(t, time.Now().Add(-59*time.Minute), ttl)
	claims, err := svc.Validate(fresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	// Issued 61 minutes ago: one minute past expiry.
	stale := signAt(t, time.Now().Add(-61*time.Minute), ttl)
	claims, err = svc.Validate(stale)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshKeepsIdentityExtendsExpiry(t *testing.T) {
	svc := newTestTokenService(t)

	original := signAt(t, time.Now().Add(-30*time.Minute), time.Hour)
	claims, err := svc.Validate(original)
	require.NoError(t, err)

	refreshed, expiresAt, err := svc.Issue(claims.Identity())
	require.NoError(t, err)
	assert.NotEqual(t, original, refreshed)
	assert.True(t, expiresAt.After(claims.ExpiresAt.Time))

	refreshedClaims, err := svc.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, refreshedClaims.UserID)
	assert.Equal(t, claims.Username, refreshedClaims.Username)
	assert.Equal(t, claims.Email, refreshedClaims.Email)
	assert.Equal(t, claims.Role, refreshedClaims.Role)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
