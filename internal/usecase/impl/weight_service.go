package impl

import (
	"context"
	"log/slog"
	"time"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/errors"
	"weighter/internal/usecase"
)

const (
	defaultWeightUnit = "kg"

	defaultListPageSize = 50
	maxListPageSize     = 200
)

// weightService implements the WeightUsecase interface.
type weightService struct {
	weightRepo repository.WeightRecordRepository
	logger     *slog.Logger
}

// NewWeightService is the constructor for weightService.
func NewWeightService(weightRepo repository.WeightRecordRepository, logger *slog.Logger) usecase.WeightUsecase {
	return &weightService{
		weightRepo: weightRepo,
		logger:     logger,
	}
}

func (srv *weightService) List(ctx context.Context, userID int64, input *usecase.ListWeightRecordsInput) (*usecase.WeightRecordPage, error) {
	filter := repository.WeightRecordFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Page:      input.Page,
		PageSize:  input.PageSize,
	}
	// Normalize here so the returned page metadata matches the query actually run.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultListPageSize
	}
	if filter.PageSize > maxListPageSize {
		filter.PageSize = maxListPageSize
	}

	records, total, err := srv.weightRepo.ListForUser(ctx, userID, filter)
	if err != nil {
		srv.logger.Error("Failed to list weight records", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to list weight records")
	}

	return &usecase.WeightRecordPage{
		Records:  records,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (srv *weightService) Get(ctx context.Context, userID, recordID int64) (*entity.WeightRecord, error) {
	record, err := srv.weightRepo.FindByIDForUser(ctx, recordID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWeightRecordNotFound) {
			return nil, domainerrors.ErrWeightRecordNotFound.WrapMessage("weight record lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find weight record")
	}

	return record, nil
}

func (srv *weightService) Create(ctx context.Context, userID int64, input *usecase.SaveWeightRecordInput) (*entity.WeightRecord, error) {
	record := &entity.WeightRecord{
		UserID:     userID,
		Weight:     input.Weight,
		Unit:       input.Unit,
		Notes:      input.Notes,
		RecordedAt: input.RecordedAt,
	}
	applyRecordDefaults(record)

	if err := srv.weightRepo.Create(ctx, record); err != nil {
		srv.logger.Error("Failed to create weight record", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to create weight record")
	}

	srv.logger.Info("Weight record created", "recordID", record.ID, "userID", userID)

	return record, nil
}

func (srv *weightService) Update(ctx context.Context, userID, recordID int64, input *usecase.SaveWeightRecordInput) (*entity.WeightRecord, error) {
	// The ownership check and the update are separate statements, but a record
	// never changes owner, so the existing record cannot escape between them.
	record, err := srv.weightRepo.FindByIDForUser(ctx, recordID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWeightRecordNotFound) {
			return nil, domainerrors.ErrWeightRecordNotFound.WrapMessage("weight record update failed")
		}

		return nil, errors.Wrap(err, "failed to find weight record for update")
	}

	record.Weight = input.Weight
	record.Unit = input.Unit
	record.Notes = input.Notes
	record.RecordedAt = input.RecordedAt
	applyRecordDefaults(record)

	if err := srv.weightRepo.Update(ctx, record); err != nil {
		srv.logger.Error("Failed to update weight record", "error", err, "recordID", recordID)

		return nil, errors.Wrap(err, "failed to update weight record")
	}

	return record, nil
}

func (srv *weightService) Delete(ctx context.Context, userID, recordID int64) error {
	if err := srv.weightRepo.DeleteForUser(ctx, recordID, userID); err != nil {
		if errors.Is(err, repository.ErrWeightRecordNotFound) {
			return domainerrors.ErrWeightRecordNotFound.WrapMessage("weight record delete failed")
		}

		return errors.Wrap(err, "failed to delete weight record")
	}

	srv.logger.Info("Weight record deleted", "recordID", recordID, "userID", userID)

	return nil
}

func (srv *weightService) Statistics(ctx context.Context, userID int64, startDate *time.Time) (*entity.WeightStatistics, error) {
	stats, err := srv.weightRepo.StatisticsForUser(ctx, userID, startDate)
	if err != nil {
		srv.logger.Error("Failed to compute weight statistics", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to compute weight statistics")
	}

	return stats, nil
}

func (srv *weightService) ListAll(ctx context.Context) ([]*entity.WeightRecord, error) {
	records, err := srv.weightRepo.ListAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to list all weight records", "error", err)

		return nil, errors.Wrap(err, "failed to list all weight records")
	}

	return records, nil
}

// applyRecordDefaults fills the unit and timestamp when the client omits them.
func applyRecordDefaults(record *entity.WeightRecord) {
	if record.Unit == "" {
		record.Unit = defaultWeightUnit
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}
}
