package repository

import (
	"context"

	"weighter/internal/domain/entity"
	"weighter/internal/errors"
)

// ErrReportNotFound signals a lookup miss.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository is the persistence contract for reports.
type ReportRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Report, error)
	List(ctx context.Context) ([]*entity.Report, error)
	Create(ctx context.Context, report *entity.Report) error
	Update(ctx context.Context, report *entity.Report) error
	Delete(ctx context.Context, id int64) error
}
