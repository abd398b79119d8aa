package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weighter/internal/domain/entity"
	"weighter/internal/domain/service"
	"weighter/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWeightUsecase records inputs and plays back canned outputs.
type stubWeightUsecase struct {
	listUserID int64
	listInput  *usecase.ListWeightRecordsInput
	getUserID  int64
	getID      int64

	page   *usecase.WeightRecordPage
	record *entity.WeightRecord
	stats  *entity.WeightStatistics
	err    error
}

func (s *stubWeightUsecase) List(ctx context.Context, userID int64, input *usecase.ListWeightRecordsInput) (*usecase.WeightRecordPage, error) {
	s.listUserID = userID
	s.listInput = input

	return s.page, s.err
}

func (s *stubWeightUsecase) Get(ctx context.Context, userID, recordID int64) (*entity.WeightRecord, error) {
	s.getUserID = userID
	s.getID = recordID

	return s.record, s.err
}

func (s *stubWeightUsecase) Create(ctx context.Context, userID int64, input *usecase.SaveWeightRecordInput) (*entity.WeightRecord, error) {
	return s.record, s.err
}

func (s *stubWeightUsecase) Update(ctx context.Context, userID, recordID int64, input *usecase.SaveWeightRecordInput) (*entity.WeightRecord, error) {
	return s.record, s.err
}

func (s *stubWeightUsecase) Delete(ctx context.Context, userID, recordID int64) error {
	return s.err
}

func (s *stubWeightUsecase) Statistics(ctx context.Context, userID int64, startDate *time.Time) (*entity.WeightStatistics, error) {
	return s.stats, s.err
}

func (s *stubWeightUsecase) ListAll(ctx context.Context) ([]*entity.WeightRecord, error) {
	if s.record == nil {
		return nil, s.err
	}

	return []*entity.WeightRecord{s.record}, s.err
}

func authedContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newHandlerContext(t, method, target, "")
	c.Set("authClaims", &service.Claims{UserID: 42, Username: "tester", Role: entity.RoleUser})

	return c, rec
}

func TestWeightHandler_Get_RendersCamelCaseFields(t *testing.T) {
	stub := &stubWeightUsecase{
		record: &entity.WeightRecord{
			ID:         3,
			UserID:     42,
			Weight:     81.5,
			Unit:       "kg",
			RecordedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	h := NewWeightHandler(stub, discardLogger())

	c, rec := authedContext(t, http.MethodGet, "/weights/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), stub.getUserID)

	body := rec.Body.String()
	assert.Contains(t, body, `"userId":42`)
	assert.Contains(t, body, `"recordedAt"`)
	assert.NotContains(t, body, `"UserID"`)
	assert.NotContains(t, body, `"RecordedAt"`)
}

func TestWeightHandler_List_SetsPaginationHeaders(t *testing.T) {
	stub := &stubWeightUsecase{
		page: &usecase.WeightRecordPage{
			Records:  []*entity.WeightRecord{},
			Total:    13,
			Page:     2,
			PageSize: 10,
		},
	}
	h := NewWeightHandler(stub, discardLogger())

	c, rec := authedContext(t, http.MethodGet, "/weights?page=2&pageSize=10")

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("X-Total-Count"))
	assert.Equal(t, "2", rec.Header().Get("X-Page"))
	assert.Equal(t, "10", rec.Header().Get("X-Page-Size"))
	assert.Contains(t, rec.Body.String(), `"pageSize":10`)
}
