package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	mockRepo "weighter/internal/mocks/repository"
	"weighter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T) (usecase.ReportUsecase, *mockRepo.MockReportRepository) {
	reportRepo := mockRepo.NewMockReportRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewReportService(reportRepo, logger), reportRepo
}

func TestReportService_Create_Success(t *testing.T) {
	svc, reportRepo := createTestReportService(t)

	ctx := context.Background()
	input := &usecase.SaveReportInput{Description: "scale reads low"}

	reportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(ctx context.Context, report *entity.Report) {
			assert.Equal(t, input.Description, report.Description)
			report.ID = 3
		}).
		Return(nil)

	report, err := svc.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), report.ID)
}

func TestReportService_Get_NotFound(t *testing.T) {
	svc, reportRepo := createTestReportService(t)

	ctx := context.Background()

	reportRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrReportNotFound)

	report, err := svc.Get(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_Update_Success(t *testing.T) {
	svc, reportRepo := createTestReportService(t)

	ctx := context.Background()
	existing := &entity.Report{ID: 3, Description: "old text"}
	input := &usecase.SaveReportInput{Description: "new text"}

	reportRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	reportRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(ctx context.Context, report *entity.Report) {
			assert.Equal(t, "new text", report.Description)
		}).
		Return(nil)

	report, err := svc.Update(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "new text", report.Description)
}

func TestReportService_Delete_NotFound(t *testing.T) {
	svc, reportRepo := createTestReportService(t)

	ctx := context.Background()

	reportRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(repository.ErrReportNotFound)

	err := svc.Delete(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_List_Success(t *testing.T) {
	svc, reportRepo := createTestReportService(t)

	ctx := context.Background()
	reports := []*entity.Report{{ID: 1, Description: "one"}, {ID: 2, Description: "two"}}

	reportRepo.EXPECT().List(ctx).Return(reports, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, reports, got)
}
