package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/errors"
	"weighter/internal/infra/persistence/model"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// weightRecordRepository implements repository.WeightRecordRepository using GORM.
type weightRecordRepository struct {
	db *gorm.DB
}

// NewWeightRecordRepository is the constructor for weightRecordRepository.
func NewWeightRecordRepository(db *gorm.DB) repository.WeightRecordRepository {
	return &weightRecordRepository{db: db}
}

// FindByIDForUser retrieves a record only when it belongs to the given user.
// The ownership filter lives in the query, so foreign records look missing.
func (repo *weightRecordRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*entity.WeightRecord, error) {
	var recordM model.WeightRecordModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeightRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find weight record")
	}

	return toWeightRecordDomain(&recordM), nil
}

// ListForUser returns one page of the user's records, newest first, plus the
// total count before pagination.
func (repo *weightRecordRepository) ListForUser(ctx context.Context, userID int64, filter repository.WeightRecordFilter) ([]*entity.WeightRecord, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.WeightRecordModel{}).
		Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("recorded_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("recorded_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count weight records")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var models []model.WeightRecordModel
	err := query.
		Order("recorded_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list weight records")
	}

	records := make([]*entity.WeightRecord, 0, len(models))
	for i := range models {
		records = append(records, toWeightRecordDomain(&models[i]))
	}

	return records, total, nil
}

// ListAll returns every record in the store, newest first.
func (repo *weightRecordRepository) ListAll(ctx context.Context) ([]*entity.WeightRecord, error) {
	var models []model.WeightRecordModel
	err := repo.db.WithContext(ctx).
		Order("recorded_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all weight records")
	}

	records := make([]*entity.WeightRecord, 0, len(models))
	for i := range models {
		records = append(records, toWeightRecordDomain(&models[i]))
	}

	return records, nil
}

// Create inserts a new record and fills in the generated ID.
func (repo *weightRecordRepository) Create(ctx context.Context, record *entity.WeightRecord) error {
	recordM := fromWeightRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create weight record")
	}

	record.ID = recordM.ID

	return nil
}

// Update persists changes to an existing record.
func (repo *weightRecordRepository) Update(ctx context.Context, record *entity.WeightRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WeightRecordModel{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]any{
			"weight":      record.Weight,
			"unit":        record.Unit,
			"notes":       record.Notes,
			"recorded_at": record.RecordedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update weight record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWeightRecordNotFound
	}

	return nil
}

// DeleteForUser removes a record only when it belongs to the given user.
func (repo *weightRecordRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.WeightRecordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete weight record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWeightRecordNotFound
	}

	return nil
}

// StatisticsForUser aggregates the user's records from startDate onward.
// Aggregation happens in SQL except for current/start weight, which need the
// newest and oldest rows.
func (repo *weightRecordRepository) StatisticsForUser(ctx context.Context, userID int64, startDate *time.Time) (*entity.WeightStatistics, error) {
	// Select is a chain method that mutates the statement it is called on,
	// so each sub-query starts from its own freshly filtered statement.
	base := func() *gorm.DB {
		query := repo.db.WithContext(ctx).
			Model(&model.WeightRecordModel{}).
			Where("user_id = ?", userID)
		if startDate != nil {
			query = query.Where("recorded_at >= ?", *startDate)
		}

		return query
	}

	var agg struct {
		TotalRecords int64
		MinWeight    float64
		MaxWeight    float64
		AvgWeight    float64
	}
	err := base().
		Select("COUNT(*) AS total_records, COALESCE(MIN(weight), 0) AS min_weight, COALESCE(MAX(weight), 0) AS max_weight, COALESCE(AVG(weight), 0) AS avg_weight").
		Scan(&agg).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate weight statistics")
	}

	stats := &entity.WeightStatistics{
		TotalRecords: int(agg.TotalRecords),
		MinWeight:    agg.MinWeight,
		MaxWeight:    agg.MaxWeight,
		AvgWeight:    agg.AvgWeight,
	}
	if stats.TotalRecords == 0 {
		return stats, nil
	}

	var newest, oldest model.WeightRecordModel
	if err := base().Order("recorded_at DESC").First(&newest).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load newest weight record")
	}
	if err := base().Order("recorded_at ASC").First(&oldest).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load oldest weight record")
	}

	stats.CurrentWeight = newest.Weight
	stats.StartWeight = oldest.Weight
	stats.WeightChange = newest.Weight - oldest.Weight

	return stats, nil
}

// --- Mapper Functions ---

func toWeightRecordDomain(data *model.WeightRecordModel) *entity.WeightRecord {
	if data == nil {
		return nil
	}

	return &entity.WeightRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		Weight:     data.Weight,
		Unit:       data.Unit,
		Notes:      data.Notes,
		RecordedAt: data.RecordedAt,
	}
}

func fromWeightRecordDomain(data *entity.WeightRecord) *model.WeightRecordModel {
	if data == nil {
		return nil
	}

	return &model.WeightRecordModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Weight:     data.Weight,
		Unit:       data.Unit,
		Notes:      data.Notes,
		RecordedAt: data.RecordedAt,
	}
}
