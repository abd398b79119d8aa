package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	mockRepo "weighter/internal/mocks/repository"
	"weighter/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// weightServiceFixtures holds all test dependencies for weight service tests.
type weightServiceFixtures struct {
	service    usecase.WeightUsecase
	weightRepo *mockRepo.MockWeightRecordRepository
}

func createTestWeightService(t *testing.T) weightServiceFixtures {
	weightRepo := mockRepo.NewMockWeightRecordRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewWeightService(weightRepo, logger)

	return weightServiceFixtures{
		service:    svc,
		weightRepo: weightRepo,
	}
}

func testWeightRecord() *entity.WeightRecord {
	return &entity.WeightRecord{
		ID:         11,
		UserID:     42,
		Weight:     82.5,
		Unit:       "kg",
		Notes:      "morning",
		RecordedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestWeightService_List_Success(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	records := []*entity.WeightRecord{testWeightRecord()}
	input := &usecase.ListWeightRecordsInput{Page: 2, PageSize: 10}

	fx.weightRepo.EXPECT().
		ListForUser(ctx, int64(42), repository.WeightRecordFilter{Page: 2, PageSize: 10}).
		Return(records, int64(13), nil)

	page, err := fx.service.List(ctx, 42, input)

	require.NoError(t, err)
	assert.Len(t, page.Records, 1)
	assert.Equal(t, int64(13), page.Total)
	assert.Equal(t, 2, page.Page)
}

func TestWeightService_List_NormalizesPaging(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	input := &usecase.ListWeightRecordsInput{Page: 0, PageSize: 0}

	fx.weightRepo.EXPECT().
		ListForUser(ctx, int64(42), repository.WeightRecordFilter{Page: 1, PageSize: 50}).
		Return(nil, int64(0), nil)

	page, err := fx.service.List(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)
}

func TestWeightService_Get_NotFound(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()

	fx.weightRepo.EXPECT().
		FindByIDForUser(ctx, int64(11), int64(99)).
		Return(nil, repository.ErrWeightRecordNotFound)

	record, err := fx.service.Get(ctx, 99, 11)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrWeightRecordNotFound)
}

func TestWeightService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	input := &usecase.SaveWeightRecordInput{Weight: 80.0}

	fx.weightRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WeightRecord")).
		Run(func(ctx context.Context, record *entity.WeightRecord) {
			assert.Equal(t, int64(42), record.UserID)
			assert.Equal(t, "kg", record.Unit)
			assert.WithinDuration(t, time.Now(), record.RecordedAt, time.Minute)
			record.ID = 11
		}).
		Return(nil)

	record, err := fx.service.Create(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), record.ID)
	assert.Equal(t, "kg", record.Unit)
}

func TestWeightService_Create_KeepsExplicitFields(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	recordedAt := time.Date(2025, 5, 1, 7, 30, 0, 0, time.UTC)
	input := &usecase.SaveWeightRecordInput{
		Weight:     181.0,
		Unit:       "lb",
		Notes:      "after run",
		RecordedAt: recordedAt,
	}

	fx.weightRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WeightRecord")).
		Run(func(ctx context.Context, record *entity.WeightRecord) {
			assert.Equal(t, "lb", record.Unit)
			assert.Equal(t, recordedAt, record.RecordedAt)
		}).
		Return(nil)

	_, err := fx.service.Create(ctx, 42, input)

	require.NoError(t, err)
}

func TestWeightService_Update_Success(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	existing := testWeightRecord()
	input := &usecase.SaveWeightRecordInput{
		Weight:     81.0,
		Unit:       "kg",
		Notes:      "evening",
		RecordedAt: existing.RecordedAt,
	}

	fx.weightRepo.EXPECT().
		FindByIDForUser(ctx, existing.ID, existing.UserID).
		Return(existing, nil)

	fx.weightRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.WeightRecord")).
		Run(func(ctx context.Context, record *entity.WeightRecord) {
			assert.Equal(t, 81.0, record.Weight)
			assert.Equal(t, "evening", record.Notes)
		}).
		Return(nil)

	record, err := fx.service.Update(ctx, existing.UserID, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, 81.0, record.Weight)
}

func TestWeightService_Update_OtherUsersRecord(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	input := &usecase.SaveWeightRecordInput{Weight: 81.0}

	// Records owned by someone else look exactly like missing ones.
	fx.weightRepo.EXPECT().
		FindByIDForUser(ctx, int64(11), int64(99)).
		Return(nil, repository.ErrWeightRecordNotFound)

	record, err := fx.service.Update(ctx, 99, 11, input)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrWeightRecordNotFound)
}

func TestWeightService_Delete_Success(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()

	fx.weightRepo.EXPECT().
		DeleteForUser(ctx, int64(11), int64(42)).
		Return(nil)

	err := fx.service.Delete(ctx, 42, 11)

	require.NoError(t, err)
}

func TestWeightService_Statistics_Success(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	stats := &entity.WeightStatistics{
		TotalRecords:  5,
		CurrentWeight: 80.0,
		StartWeight:   84.0,
		MinWeight:     79.5,
		MaxWeight:     84.0,
		AvgWeight:     81.6,
		WeightChange:  -4.0,
	}

	fx.weightRepo.EXPECT().
		StatisticsForUser(ctx, int64(42), &since).
		Return(stats, nil)

	got, err := fx.service.Statistics(ctx, 42, &since)

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestWeightService_ListAll_Success(t *testing.T) {
	fx := createTestWeightService(t)

	ctx := context.Background()
	records := []*entity.WeightRecord{testWeightRecord()}

	fx.weightRepo.EXPECT().ListAll(ctx).Return(records, nil)

	got, err := fx.service.ListAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}
