package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"weighter/internal/domain/entity"
	"weighter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportUsecase plays back canned outputs.
type stubReportUsecase struct {
	getID int64

	report *entity.Report
	err    error
}

func (s *stubReportUsecase) List(ctx context.Context) ([]*entity.Report, error) {
	if s.report == nil {
		return nil, s.err
	}

	return []*entity.Report{s.report}, s.err
}

func (s *stubReportUsecase) Get(ctx context.Context, id int64) (*entity.Report, error) {
	s.getID = id

	return s.report, s.err
}

func (s *stubReportUsecase) Create(ctx context.Context, input *usecase.SaveReportInput) (*entity.Report, error) {
	return s.report, s.err
}

func (s *stubReportUsecase) Update(ctx context.Context, id int64, input *usecase.SaveReportInput) (*entity.Report, error) {
	return s.report, s.err
}

func (s *stubReportUsecase) Delete(ctx context.Context, id int64) error {
	return s.err
}

func TestReportHandler_Get_RendersCamelCaseFields(t *testing.T) {
	stub := &stubReportUsecase{
		report: &entity.Report{
			ID:          5,
			Description: "monthly summary",
			CreatedAt:   time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	h := NewReportHandler(stub, discardLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/reports/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := h.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), stub.getID)

	body := rec.Body.String()
	assert.Contains(t, body, `"createdAt"`)
	assert.NotContains(t, body, `"CreatedAt"`)
}
