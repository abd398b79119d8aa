package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"weighter/internal/delivery/http/middleware"
	"weighter/internal/delivery/http/response"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WeightHandler holds dependencies for weight record handlers.
type WeightHandler struct {
	uc     usecase.WeightUsecase
	logger *slog.Logger
}

// NewWeightHandler is the constructor for WeightHandler, injected by Fx.
func NewWeightHandler(uc usecase.WeightUsecase, logger *slog.Logger) *WeightHandler {
	return &WeightHandler{
		uc:     uc,
		logger: logger,
	}
}

// userIDFrom reads the caller's user ID from the authenticated claims. The
// record owner always comes from the token, never from the request payload.
func userIDFrom(c echo.Context) (int64, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return 0, domainerrors.ErrTokenInvalid.WrapMessage("request without authenticated claims")
	}

	return claims.UserID, nil
}

// List returns one page of the caller's weight records.
func (h *WeightHandler) List(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	startDate, err := parseTimeQuery(c, "startDate")
	if err != nil {
		return err
	}
	endDate, err := parseTimeQuery(c, "endDate")
	if err != nil {
		return err
	}

	input := &usecase.ListWeightRecordsInput{
		StartDate: startDate,
		EndDate:   endDate,
		Page:      parseIntQuery(c, "page", 1),
		PageSize:  parseIntQuery(c, "pageSize", 0),
	}

	page, err := h.uc.List(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	header := c.Response().Header()
	header.Set("X-Total-Count", strconv.FormatInt(page.Total, 10))
	header.Set("X-Page", strconv.Itoa(page.Page))
	header.Set("X-Page-Size", strconv.Itoa(page.PageSize))

	return response.Success(c, http.StatusOK, page, "Weight records retrieved successfully")
}

// Get returns one of the caller's weight records.
func (h *WeightHandler) Get(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	record, err := h.uc.Get(c.Request().Context(), userID, recordID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Weight record retrieved successfully")
}

// Create stores a new weight record for the caller.
func (h *WeightHandler) Create(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var input *usecase.SaveWeightRecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight record input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Weight record created successfully")
}

// Update rewrites one of the caller's weight records.
func (h *WeightHandler) Update(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.SaveWeightRecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight record input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.Update(c.Request().Context(), userID, recordID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Weight record updated successfully")
}

// Delete removes one of the caller's weight records.
func (h *WeightHandler) Delete(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, recordID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Weight record deleted successfully")
}

// Statistics aggregates the caller's weight records.
func (h *WeightHandler) Statistics(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	startDate, err := parseTimeQuery(c, "startDate")
	if err != nil {
		return err
	}

	stats, err := h.uc.Statistics(c.Request().Context(), userID, startDate)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Weight statistics retrieved successfully")
}

// ListAll returns every user's records. Admin only, the router guards it with
// the role middleware.
func (h *WeightHandler) ListAll(c echo.Context) error {
	records, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "All weight records retrieved successfully")
}
