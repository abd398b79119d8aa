package handler

import (
	"strconv"
	"time"

	domainerrors "weighter/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewBaseError(
			domainerrors.ErrValidationFailed.HTTPCode(),
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			name+" must be a positive integer",
		)
	}

	return id, nil
}

// parseIntQuery reads an optional integer query parameter, returning the
// fallback when absent or unparseable.
func parseIntQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// parseTimeQuery reads an optional timestamp query parameter. Accepts RFC 3339
// and plain dates. Returns nil when the parameter is absent.
func parseTimeQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}

	return nil, domainerrors.NewBaseError(
		domainerrors.ErrValidationFailed.HTTPCode(),
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		name+" must be an RFC 3339 timestamp or a YYYY-MM-DD date",
	)
}
