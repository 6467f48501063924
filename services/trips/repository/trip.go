package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/convoy/internal/pkg/models"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/services/trips"
)

const tripColumns = `id, owner_id, origin_city, origin_lat, origin_lng,
	destination_city, destination_lat, destination_lng,
	departure_at, seat_count, price_per_seat, participants, created_at`

const defaultListLimit = 200

// tripRow mirrors the trips table; participants are scanned as text
type tripRow struct {
	ID              uuid.UUID      `db:"id"`
	OwnerID         uuid.UUID      `db:"owner_id"`
	OriginCity      string         `db:"origin_city"`
	OriginLat       *float64       `db:"origin_lat"`
	OriginLng       *float64       `db:"origin_lng"`
	DestinationCity string         `db:"destination_city"`
	DestinationLat  *float64       `db:"destination_lat"`
	DestinationLng  *float64       `db:"destination_lng"`
	DepartureAt     time.Time      `db:"departure_at"`
	SeatCount       int            `db:"seat_count"`
	PricePerSeat    *float64       `db:"price_per_seat"`
	Participants    pq.StringArray `db:"participants"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r *tripRow) toModel() (*models.Trip, error) {
	participants := make([]uuid.UUID, 0, len(r.Participants))
	for _, p := range r.Participants {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("invalid participant %q on trip %s: %w", p, r.ID, err)
		}
		participants = append(participants, id)
	}
	return &models.Trip{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		OriginCity:      r.OriginCity,
		OriginLat:       r.OriginLat,
		OriginLng:       r.OriginLng,
		DestinationCity: r.DestinationCity,
		DestinationLat:  r.DestinationLat,
		DestinationLng:  r.DestinationLng,
		DepartureAt:     r.DepartureAt,
		SeatCount:       r.SeatCount,
		PricePerSeat:    r.PricePerSeat,
		Participants:    participants,
		CreatedAt:       r.CreatedAt,
	}, nil
}

type tripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a Postgres backed trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) trips.TripRepo {
	return &tripRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetTrip retrieves a trip by ID
func (r *tripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var row tripRow
	err := nrpkg.WithDatastoreSegment(ctx, "trips", "SELECT", func() error {
		return r.db.GetContext(ctx, &row, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return row.toModel()
}

// ListUpcomingTrips returns the candidate set for a search
func (r *tripRepo) ListUpcomingTrips(ctx context.Context, after time.Time, limit int) ([]*models.Trip, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `SELECT ` + tripColumns + ` FROM trips
		WHERE departure_at >= $1
		ORDER BY departure_at ASC, id ASC
		LIMIT $2`

	var rows []tripRow
	err := nrpkg.WithDatastoreSegment(ctx, "trips", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, after, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	result := make([]*models.Trip, 0, len(rows))
	for i := range rows {
		trip, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, trip)
	}
	return result, nil
}

// JoinTrip appends userID to the participants in a single statement. When
// nothing is updated the trip is read again to tell why.
func (r *tripRepo) JoinTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	query := `
		UPDATE trips SET participants = array_append(participants, $2::uuid)
		WHERE id = $1
			AND owner_id <> $2::uuid
			AND NOT ($2::uuid = ANY(participants))
			AND cardinality(participants) < seat_count
		RETURNING ` + tripColumns

	var row tripRow
	err := nrpkg.WithDatastoreSegment(ctx, "trips", "UPDATE", func() error {
		return r.db.GetContext(ctx, &row, query, tripID, userID)
	})
	if err == nil {
		return row.toModel()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to join trip: %w", err)
	}

	trip, err := r.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	switch {
	case trip.OwnerID == userID:
		return nil, models.ErrForbidden
	case trip.HasParticipant(userID):
		return trip, nil
	default:
		return nil, models.ErrTripFull
	}
}
