package usecase

import (
	"context"

	"weighter/internal/domain/entity"
)

// SaveReportInput carries the client-settable report fields.
type SaveReportInput struct {
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// ReportUsecase defines the report CRUD operations.
type ReportUsecase interface {
	List(ctx context.Context) ([]*entity.Report, error)
	Get(ctx context.Context, id int64) (*entity.Report, error)
	Create(ctx context.Context, input *SaveReportInput) (*entity.Report, error)
	Update(ctx context.Context, id int64, input *SaveReportInput) (*entity.Report, error)
	Delete(ctx context.Context, id int64) error
}
