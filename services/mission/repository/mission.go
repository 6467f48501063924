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
	"github.com/piresc/convoy/services/mission"
)

const missionColumns = `id, reference, title, status, pickup_address, delivery_address,
	owner_id, driver_id, contact_phone, contact_email, archived,
	started_at, completed_at, cancelled_at, created_at, updated_at`

const defaultListLimit = 200

type missionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMissionRepository creates a Postgres backed mission repository
func NewMissionRepository(cfg *models.Config, db *sqlx.DB) mission.MissionRepo {
	return &missionRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetMission retrieves a mission by ID
func (r *missionRepo) GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`

	var m models.Mission
	err := nrpkg.WithDatastoreSegment(ctx, "missions", "SELECT", func() error {
		return r.db.GetContext(ctx, &m, query, id)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return &m, nil
}

// ListMissions returns non-archived missions in one of statuses, most
// recently updated first
func (r *missionRepo) ListMissions(ctx context.Context, statuses []models.MissionStatus, limit int) ([]*models.Mission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	filter := make([]string, len(statuses))
	for i, s := range statuses {
		filter[i] = string(s)
	}

	query := `SELECT ` + missionColumns + ` FROM missions
		WHERE archived = FALSE AND status = ANY($1)
		ORDER BY updated_at DESC
		LIMIT $2`

	missions := []*models.Mission{}
	err := nrpkg.WithDatastoreSegment(ctx, "missions", "SELECT", func() error {
		return r.db.SelectContext(ctx, &missions, query, pq.Array(filter), limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// UpdateStatus applies a compare-and-swap on the mission status and stamps
// the lifecycle timestamp that belongs to next
func (r *missionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next models.MissionStatus, at time.Time) error {
	query := `
		UPDATE missions SET
			status = $1,
			started_at = CASE WHEN $1 = 'in_progress' THEN $4 ELSE started_at END,
			completed_at = CASE WHEN $1 = 'completed' THEN $4 ELSE completed_at END,
			cancelled_at = CASE WHEN $1 = 'cancelled' THEN $4 ELSE cancelled_at END,
			updated_at = $4
		WHERE id = $2 AND status = $3`

	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, "missions", "UPDATE", func() error {
		var err error
		result, err = r.db.ExecContext(ctx, query, next, id, expected, at)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update mission status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrStaleState
	}
	return nil
}
