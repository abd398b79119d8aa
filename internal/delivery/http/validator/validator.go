// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "weighter/internal/domain/errors"
)

// CustomValidator wraps a single validator instance; it caches struct metadata
// and is safe for concurrent use.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the caller-visible
// validation error, with the field errors as details.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.NewBaseError(
			domainerrors.ErrValidationFailed.HTTPCode(),
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			err.Error(),
		)
	}

	return nil
}

var _ echo.Validator = (*CustomValidator)(nil)
