package impl

import (
	"context"
	"log/slog"

	"weighter/internal/domain/entity"
	domainerrors "weighter/internal/domain/errors"
	"weighter/internal/domain/repository"
	"weighter/internal/errors"
	"weighter/internal/usecase"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(reportRepo repository.ReportRepository, logger *slog.Logger) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (srv *reportService) List(ctx context.Context) ([]*entity.Report, error) {
	reports, err := srv.reportRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list reports", "error", err)

		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

func (srv *reportService) Get(ctx context.Context, id int64) (*entity.Report, error) {
	report, err := srv.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound.WrapMessage("report lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	return report, nil
}

func (srv *reportService) Create(ctx context.Context, input *usecase.SaveReportInput) (*entity.Report, error) {
	report := &entity.Report{
		Description: input.Description,
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		srv.logger.Error("Failed to create report", "error", err)

		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.logger.Info("Report created", "reportID", report.ID)

	return report, nil
}

func (srv *reportService) Update(ctx context.Context, id int64, input *usecase.SaveReportInput) (*entity.Report, error) {
	report, err := srv.reportRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound.WrapMessage("report update failed")
		}

		return nil, errors.Wrap(err, "failed to find report for update")
	}

	report.Description = input.Description

	if err := srv.reportRepo.Update(ctx, report); err != nil {
		srv.logger.Error("Failed to update report", "error", err, "reportID", id)

		return nil, errors.Wrap(err, "failed to update report")
	}

	return report, nil
}

func (srv *reportService) Delete(ctx context.Context, id int64) error {
	if err := srv.reportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return domainerrors.ErrReportNotFound.WrapMessage("report delete failed")
		}

		return errors.Wrap(err, "failed to delete report")
	}

	srv.logger.Info("Report deleted", "reportID", id)

	return nil
}
