package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/convoy/internal/pkg/models"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/services/sharing"
)

const tokenColumns = `token, mission_id, created_by, created_at, expires_at, revoked, revoked_at`

type tokenRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTokenRepository creates a Postgres backed tracking token repository
func NewTokenRepository(cfg *models.Config, db *sqlx.DB) sharing.TokenRepo {
	return &tokenRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateToken persists a newly issued token
func (r *tokenRepo) CreateToken(ctx context.Context, token *models.TrackingToken) error {
	query := `
		INSERT INTO tracking_tokens (token, mission_id, created_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`

	err := nrpkg.WithDatastoreSegment(ctx, "tracking_tokens", "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, query,
			token.Token, token.MissionID, token.CreatedBy, token.CreatedAt, token.ExpiresAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create tracking token: %w", err)
	}
	return nil
}

// GetToken looks a token up by its value
func (r *tokenRepo) GetToken(ctx context.Context, token string) (*models.TrackingToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM tracking_tokens WHERE token = $1`

	var t models.TrackingToken
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_tokens", "SELECT", func() error {
		return r.db.GetContext(ctx, &t, query, token)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracking token: %w", err)
	}
	return &t, nil
}

// RevokeToken marks a token revoked
func (r *tokenRepo) RevokeToken(ctx context.Context, token string, at time.Time) error {
	query := `
		UPDATE tracking_tokens
		SET revoked = TRUE, revoked_at = COALESCE(revoked_at, $2)
		WHERE token = $1`

	var result sql.Result
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_tokens", "UPDATE", func() error {
		var err error
		result, err = r.db.ExecContext(ctx, query, token, at)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to revoke tracking token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrInvalidOrExpiredLink
	}
	return nil
}

// ListTokens returns every token issued for a mission, newest first
func (r *tokenRepo) ListTokens(ctx context.Context, missionID uuid.UUID) ([]*models.TrackingToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM tracking_tokens
		WHERE mission_id = $1
		ORDER BY created_at DESC`

	tokens := []*models.TrackingToken{}
	err := nrpkg.WithDatastoreSegment(ctx, "tracking_tokens", "SELECT", func() error {
		return r.db.SelectContext(ctx, &tokens, query, missionID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking tokens: %w", err)
	}
	return tokens, nil
}
