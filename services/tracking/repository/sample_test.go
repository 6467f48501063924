package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/tracking/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCols = []string{"id", "mission_id", "latitude", "longitude", "speed", "heading", "geohash", "captured_at", "received_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestStoreSample(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTrackingRepository(&models.Config{}, db)

	speed := 54.5
	sample := &models.TrackingSample{
		MissionID:  uuid.New(),
		Latitude:   48.85,
		Longitude:  2.35,
		Speed:      &speed,
		Geohash:    "u09tvw0f6",
		CapturedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ReceivedAt: time.Date(2024, 5, 1, 10, 0, 2, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tracking_samples")).
		WithArgs(sample.MissionID, 48.85, 2.35, 54.5, nil, "u09tvw0f6", sample.CapturedAt, sample.ReceivedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(17)))

	stored, err := repo.StoreSample(context.Background(), sample)

	require.NoError(t, err)
	assert.Equal(t, int64(17), stored.ID)
	assert.Equal(t, int64(0), sample.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSample(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTrackingRepository(&models.Config{}, db)

	missionID := uuid.New()
	captured := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY captured_at DESC, id DESC")).
		WithArgs(missionID).
		WillReturnRows(sqlmock.NewRows(sampleCols).
			AddRow(int64(1), missionID.String(), 48.85, 2.35, nil, nil, "u09tvw0f6", captured, captured))

	s, err := repo.GetLatestSample(context.Background(), missionID)

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 48.85, s.Latitude)
	assert.Nil(t, s.Speed)
	assert.Equal(t, captured, s.CapturedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSample_NoSamples(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTrackingRepository(&models.Config{}, db)

	missionID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM tracking_samples")).
		WithArgs(missionID).
		WillReturnError(sql.ErrNoRows)

	s, err := repo.GetLatestSample(context.Background(), missionID)

	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetLatestSamples(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTrackingRepository(&models.Config{}, db)

	a, b := uuid.New(), uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (mission_id)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(sampleCols).
			AddRow(int64(3), a.String(), 1.0, 2.0, nil, nil, "", now, now).
			AddRow(int64(9), b.String(), 3.0, 4.0, nil, nil, "", now, now))

	samples, err := repo.GetLatestSamples(context.Background(), []uuid.UUID{a, b})

	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, b, samples[1].MissionID)

	empty, err := repo.GetLatestSamples(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSamples_ClampsLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTrackingRepository(&models.Config{}, db)

	missionID := uuid.New()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("captured_at BETWEEN $2 AND $3")).
		WithArgs(missionID, from, to, 5000).
		WillReturnRows(sqlmock.NewRows(sampleCols))

	samples, err := repo.GetSamples(context.Background(), missionID, from, to, 0)

	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.NoError(t, mock.ExpectationsWereMet())
}
