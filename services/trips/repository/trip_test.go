package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tripCols = []string{
	"id", "owner_id", "origin_city", "origin_lat", "origin_lng",
	"destination_city", "destination_lat", "destination_lng",
	"departure_at", "seat_count", "price_per_seat", "participants", "created_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func tripRow(rows *sqlmock.Rows, id, owner uuid.UUID, seats int, participants string) *sqlmock.Rows {
	departure := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id.String(), owner.String(), "Paris", 48.86, 2.35,
		"Lyon", 45.75, 4.85,
		departure, seats, "25.50", participants, departure.Add(-72*time.Hour),
	)
}

func TestGetTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(tripRow(sqlmock.NewRows(tripCols), id, uuid.New(), 3, "{"+p1.String()+","+p2.String()+"}"))

	trip, err := repo.GetTrip(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Paris", trip.OriginCity)
	require.NotNil(t, trip.Origin())
	assert.Equal(t, 48.86, trip.Origin().Latitude)
	require.NotNil(t, trip.PricePerSeat)
	assert.Equal(t, 25.5, *trip.PricePerSeat)
	assert.Equal(t, []uuid.UUID{p1, p2}, trip.Participants)
	assert.Equal(t, 1, trip.SeatsLeft())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTrip(context.Background(), id)

	assert.ErrorIs(t, err, models.ErrTripNotFound)
}

func TestListUpcomingTrips(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	after := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()
	rows := sqlmock.NewRows(tripCols)
	tripRow(rows, first, uuid.New(), 3, "{}")
	tripRow(rows, second, uuid.New(), 2, "{}")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE departure_at >= $1")).
		WithArgs(after, 200).
		WillReturnRows(rows)

	result, err := repo.ListUpcomingTrips(context.Background(), after, 0)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first, result[0].ID)
	assert.Equal(t, second, result[1].ID)
	assert.Empty(t, result[0].Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUpcomingTrips_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips")).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUpcomingTrips(context.Background(), time.Now(), 10)

	assert.ErrorContains(t, err, "failed to list trips")
}

func TestJoinTrip(t *testing.T) {
	tripID := uuid.New()
	owner := uuid.New()
	user := uuid.New()
	other := uuid.New()

	tests := []struct {
		name          string
		userID        uuid.UUID
		rereadSeats   int
		rereadMembers string
		updated       bool
		wantErr       error
		wantMembers   int
	}{
		{name: "joined", userID: user, updated: true, wantMembers: 1},
		{name: "already a participant", userID: user, rereadSeats: 3, rereadMembers: "{" + user.String() + "}", wantMembers: 1},
		{name: "full", userID: user, rereadSeats: 1, rereadMembers: "{" + other.String() + "}", wantErr: models.ErrTripFull},
		{name: "own trip", userID: owner, rereadSeats: 3, rereadMembers: "{}", wantErr: models.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewTripRepository(&models.Config{}, db)

			update := mock.ExpectQuery(regexp.QuoteMeta("array_append(participants, $2::uuid)")).
				WithArgs(tripID, tt.userID)
			if tt.updated {
				update.WillReturnRows(tripRow(sqlmock.NewRows(tripCols), tripID, owner, 3, "{"+tt.userID.String()+"}"))
			} else {
				update.WillReturnRows(sqlmock.NewRows(tripCols))
				mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
					WithArgs(tripID).
					WillReturnRows(tripRow(sqlmock.NewRows(tripCols), tripID, owner, tt.rereadSeats, tt.rereadMembers))
			}

			trip, err := repo.JoinTrip(context.Background(), tripID, tt.userID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, trip)
			} else {
				require.NoError(t, err)
				assert.Len(t, trip.Participants, tt.wantMembers)
				assert.True(t, trip.HasParticipant(tt.userID))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJoinTrip_UnknownTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("array_append")).WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).WillReturnError(sql.ErrNoRows)

	_, err := repo.JoinTrip(context.Background(), tripID, uuid.New())

	assert.ErrorIs(t, err, models.ErrTripNotFound)
}
