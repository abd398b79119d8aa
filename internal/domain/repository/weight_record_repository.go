package repository

import (
	"context"
	"time"

	"weighter/internal/domain/entity"
	"weighter/internal/errors"
)

// ErrWeightRecordNotFound signals a lookup miss, including records that exist
// but belong to another user.
var ErrWeightRecordNotFound = errors.New("weight record not found")

// WeightRecordFilter narrows list queries. Zero values mean "no bound".
type WeightRecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// WeightRecordRepository is the persistence contract for weight records.
// Every user-scoped method filters by owner in the query itself, so a record
// owned by someone else is indistinguishable from a missing one.
type WeightRecordRepository interface {
	// FindByIDForUser retrieves a record only if it belongs to the user.
	FindByIDForUser(ctx context.Context, id, userID int64) (*entity.WeightRecord, error)

	// ListForUser returns the user's records newest first, plus the total
	// count before pagination.
	ListForUser(ctx context.Context, userID int64, filter WeightRecordFilter) ([]*entity.WeightRecord, int64, error)

	// ListAll returns every record in the store, newest first. Admin only.
	ListAll(ctx context.Context) ([]*entity.WeightRecord, error)

	// Create inserts a new record and fills in the generated ID.
	Create(ctx context.Context, record *entity.WeightRecord) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *entity.WeightRecord) error

	// DeleteForUser removes a record only if it belongs to the user.
	DeleteForUser(ctx context.Context, id, userID int64) error

	// StatisticsForUser aggregates the user's records from startDate onward.
	StatisticsForUser(ctx context.Context, userID int64, startDate *time.Time) (*entity.WeightStatistics, error)
}
