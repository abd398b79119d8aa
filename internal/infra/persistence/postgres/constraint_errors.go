package postgres

import (
	"strings"

	"gorm.io/gorm"

	"weighter/internal/errors"
)

// isUniqueConstraintViolation reports whether err stems from a unique index.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// violatesConstraint reports whether the error message names the given
// constraint/index. PostgreSQL includes the constraint name in unique
// violation messages, which lets registration tell a duplicate email from a
// duplicate username after an attempt-insert.
func violatesConstraint(err error, constraint string) bool {
	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(constraint))
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
