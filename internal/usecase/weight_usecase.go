package usecase

import (
	"context"
	"time"

	"weighter/internal/domain/entity"
)

// --- Input DTOs ---

// ListWeightRecordsInput narrows and pages the record listing.
type ListWeightRecordsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// SaveWeightRecordInput carries the client-settable record fields.
type SaveWeightRecordInput struct {
	Weight     float64   `json:"weight" validate:"required,gt=0,lte=1000"`
	Unit       string    `json:"unit" validate:"omitempty,max=10"`
	Notes      string    `json:"notes" validate:"omitempty,max=2000"`
	RecordedAt time.Time `json:"recordedAt"`
}

// --- Output DTOs ---

// WeightRecordPage is one page of records plus pagination metadata.
type WeightRecordPage struct {
	Records  []*entity.WeightRecord `json:"records"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
}

// WeightUsecase defines the per-user weight record operations. Every method
// except ListAll is scoped to the calling user's ID taken from the session
// claims, never from the request body.
type WeightUsecase interface {
	List(ctx context.Context, userID int64, input *ListWeightRecordsInput) (*WeightRecordPage, error)
	Get(ctx context.Context, userID, recordID int64) (*entity.WeightRecord, error)
	Create(ctx context.Context, userID int64, input *SaveWeightRecordInput) (*entity.WeightRecord, error)
	Update(ctx context.Context, userID, recordID int64, input *SaveWeightRecordInput) (*entity.WeightRecord, error)
	Delete(ctx context.Context, userID, recordID int64) error
	Statistics(ctx context.Context, userID int64, startDate *time.Time) (*entity.WeightStatistics, error)

	// ListAll returns every user's records. Admin only, enforced by the
	// delivery layer's role middleware.
	ListAll(ctx context.Context) ([]*entity.WeightRecord, error)
}
