package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weighter/internal/domain/repository"
)

func newMockedWeightRepo(t *testing.T) (repository.WeightRecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewWeightRecordRepository(db), mock
}

func weightRecordColumns() []string {
	return []string{"id", "user_id", "weight", "unit", "notes", "recorded_at"}
}

func statisticsColumns() []string {
	return []string{"total_records", "min_weight", "max_weight", "avg_weight"}
}

func TestWeightRecordRepository_StatisticsForUser_FetchesBoundaryRows(t *testing.T) {
	repo, mock := newMockedWeightRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_records, COALESCE\(MIN\(weight\), 0\) AS min_weight, COALESCE\(MAX\(weight\), 0\) AS max_weight, COALESCE\(AVG\(weight\), 0\) AS avg_weight FROM "weight_records" WHERE user_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(statisticsColumns()).AddRow(2, 80.0, 82.5, 81.25))

	// The boundary-row fetches must render as plain selects; the aggregate
	// select list from the first query must not leak into them.
	newestAt := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	oldestAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`^SELECT \* FROM "weight_records" WHERE user_id = \$1 ORDER BY recorded_at DESC`).
		WillReturnRows(sqlmock.NewRows(weightRecordColumns()).
			AddRow(2, 42, 80.0, "kg", "", newestAt))
	mock.ExpectQuery(`^SELECT \* FROM "weight_records" WHERE user_id = \$1 ORDER BY recorded_at ASC`).
		WillReturnRows(sqlmock.NewRows(weightRecordColumns()).
			AddRow(1, 42, 82.5, "kg", "", oldestAt))

	stats, err := repo.StatisticsForUser(context.Background(), 42, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 80.0, stats.CurrentWeight)
	assert.Equal(t, 82.5, stats.StartWeight)
	assert.InDelta(t, -2.5, stats.WeightChange, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeightRecordRepository_StatisticsForUser_AppliesStartDate(t *testing.T) {
	repo, mock := newMockedWeightRepo(t)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	recordedAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_records.*FROM "weight_records" WHERE user_id = \$1 AND recorded_at >= \$2`).
		WithArgs(int64(42), start).
		WillReturnRows(sqlmock.NewRows(statisticsColumns()).AddRow(1, 81.0, 81.0, 81.0))

	// Both boundary-row fetches re-apply the date filter.
	mock.ExpectQuery(`^SELECT \* FROM "weight_records" WHERE user_id = \$1 AND recorded_at >= \$2 ORDER BY recorded_at DESC`).
		WillReturnRows(sqlmock.NewRows(weightRecordColumns()).
			AddRow(3, 42, 81.0, "kg", "", recordedAt))
	mock.ExpectQuery(`^SELECT \* FROM "weight_records" WHERE user_id = \$1 AND recorded_at >= \$2 ORDER BY recorded_at ASC`).
		WillReturnRows(sqlmock.NewRows(weightRecordColumns()).
			AddRow(3, 42, 81.0, "kg", "", recordedAt))

	stats, err := repo.StatisticsForUser(context.Background(), 42, &start)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRecords)
	assert.Zero(t, stats.WeightChange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeightRecordRepository_StatisticsForUser_EmptySkipsRowFetch(t *testing.T) {
	repo, mock := newMockedWeightRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total_records.*FROM "weight_records" WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(statisticsColumns()).AddRow(0, 0.0, 0.0, 0.0))

	stats, err := repo.StatisticsForUser(context.Background(), 7, nil)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalRecords)
	assert.Zero(t, stats.CurrentWeight)
	assert.NoError(t, mock.ExpectationsWereMet())
}
