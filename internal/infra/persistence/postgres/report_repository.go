package postgres

import (
	"context"

	"gorm.io/gorm"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/errors"
	"weighter/internal/infra/persistence/model"
)

// reportRepository implements repository.ReportRepository using GORM.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) FindByID(ctx context.Context, id int64) (*entity.Report, error) {
	var reportM model.ReportModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return toReportDomain(&reportM), nil
}

func (repo *reportRepository) List(ctx context.Context) ([]*entity.Report, error) {
	var models []model.ReportModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.Report, 0, len(models))
	for i := range models {
		reports = append(reports, toReportDomain(&models[i]))
	}

	return reports, nil
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

func (repo *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ?", report.ID).
		Update("description", report.Description)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

func (repo *reportRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReportModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:          data.ID,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:          data.ID,
		Description: data.Description,
	}
}
