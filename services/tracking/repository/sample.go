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
	"github.com/piresc/convoy/services/tracking"
)

const sampleColumns = `id, mission_id, latitude, longitude, speed, heading, geohash, captured_at, received_at`

const maxHistory = 5000

type trackingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTrackingRepository creates a Postgres backed sample repository
func NewTrackingRepository(cfg *models.Config, db *sqlx.DB) tracking.TrackingRepo {
	return &trackingRepo{
		cfg: cfg,
		db:  db,
	}
}

// StoreSample appends an immutable sample and returns it with its id
func (r *trackingRepo) StoreSample(ctx context.Context, sample *models.TrackingSample) (*models.TrackingSample, error) {
	query := `
		INSERT INTO tracking_samples (
			mission_id, latitude, longitude, speed, heading, geohash, captured_at, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	stored := *sample
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_samples", "INSERT", func() error {
		return r.db.QueryRowxContext(ctx, query,
			sample.MissionID,
			sample.Latitude,
			sample.Longitude,
			sample.Speed,
			sample.Heading,
			sample.Geohash,
			sample.CapturedAt,
			sample.ReceivedAt,
		).Scan(&stored.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store tracking sample: %w", err)
	}
	return &stored, nil
}

// GetLatestSample returns the sample with the greatest captured_at. Ties are
// broken by insertion order.
func (r *trackingRepo) GetLatestSample(ctx context.Context, missionID uuid.UUID) (*models.TrackingSample, error) {
	query := `SELECT ` + sampleColumns + ` FROM tracking_samples
		WHERE mission_id = $1
		ORDER BY captured_at DESC, id DESC
		LIMIT 1`

	var s models.TrackingSample
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_samples", "SELECT", func() error {
		return r.db.GetContext(ctx, &s, query, missionID)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sample: %w", err)
	}
	return &s, nil
}

// GetLatestSamples returns the latest sample of each mission that has one
func (r *trackingRepo) GetLatestSamples(ctx context.Context, missionIDs []uuid.UUID) ([]*models.TrackingSample, error) {
	if len(missionIDs) == 0 {
		return []*models.TrackingSample{}, nil
	}
	ids := make([]string, len(missionIDs))
	for i, id := range missionIDs {
		ids[i] = id.String()
	}

	query := `SELECT DISTINCT ON (mission_id) ` + sampleColumns + ` FROM tracking_samples
		WHERE mission_id = ANY($1::uuid[])
		ORDER BY mission_id, captured_at DESC, id DESC`

	samples := []*models.TrackingSample{}
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_samples", "SELECT", func() error {
		return r.db.SelectContext(ctx, &samples, query, pq.Array(ids))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest samples: %w", err)
	}
	return samples, nil
}

// GetSamples returns samples captured in [from, to] in capture order
func (r *trackingRepo) GetSamples(ctx context.Context, missionID uuid.UUID, from, to time.Time, limit int) ([]*models.TrackingSample, error) {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}

	query := `SELECT ` + sampleColumns + ` FROM tracking_samples
		WHERE mission_id = $1 AND captured_at BETWEEN $2 AND $3
		ORDER BY captured_at ASC, id ASC
		LIMIT $4`

	samples := []*models.TrackingSample{}
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_samples", "SELECT", func() error {
		return r.db.SelectContext(ctx, &samples, query, missionID, from, to, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get samples: %w", err)
	}
	return samples, nil
}
