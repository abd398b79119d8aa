// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"weighter/config"
	"weighter/internal/domain/service"
	"weighter/internal/errors"
)

const (
	saltSize = 16 // 128-bit random salt, unique per digest.
	hashSize = 32 // 256-bit derived key.

	defaultIterations = 100_000
)

// pbkdf2Hasher derives password digests with PBKDF2 over HMAC-SHA-256.
// The stored digest layout is base64(salt || derivedKey).
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher. The iteration count
// comes from configuration so it can be raised without a code change.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := defaultIterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > 0 {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// NewPBKDF2HasherWithIterations builds a hasher with an explicit iteration
// count. Tests use a low count to keep derivation cheap.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations <= 0 {
		iterations = defaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash generates a fresh random salt, derives the key and returns the
// combined digest. Two calls with the same password yield different digests.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, hashSize, sha256.New)

	combined := make([]byte, 0, saltSize+hashSize)
	combined = append(combined, salt...)
	combined = append(combined, key...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// Check re-derives the key from the stored salt and compares it to the stored
// key in constant time. Any malformed digest (bad base64, wrong length) counts
// as a failed check rather than an error.
func (h *pbkdf2Hasher) Check(password, digest string) bool {
	combined, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return false
	}
	if len(combined) != saltSize+hashSize {
		return false
	}

	salt := combined[:saltSize]
	stored := combined[saltSize:]

	derived := pbkdf2.Key([]byte(password), salt, h.iterations, hashSize, sha256.New)

	// Constant-time over the full key length. An early-exit comparison here
	// would hand attackers a timing oracle for password guessing.
	return subtle.ConstantTimeCompare(stored, derived) == 1
}
