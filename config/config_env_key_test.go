package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"expirationMinutes": 60,
		},
		"auth": map[string]any{
			"pbkdf2Iterations": 100000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_EXPIRATIONMINUTES", want: "jwt.expirationMinutes"},
		{envKey: "AUTH_PBKDF2ITERATIONS", want: "auth.pbkdf2Iterations"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestTokenTTL_DefaultsToSixtyMinutes(t *testing.T) {
	cfg := &Config{}
	if got := cfg.TokenTTL(); got != 60*time.Minute {
		t.Fatalf("TokenTTL() = %v, want 60m", got)
	}

	cfg.JWT.ExpirationMinutes = 15
	if got := cfg.TokenTTL(); got != 15*time.Minute {
		t.Fatalf("TokenTTL() = %v, want 15m", got)
	}
}
