package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// TrackingRepo defines the interface for tracking sample persistence
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/convoy/services/tracking TrackingRepo,PositionCache
type TrackingRepo interface {
	StoreSample(ctx context.Context, sample *models.TrackingSample) (*models.TrackingSample, error)
	// GetLatestSample returns the sample with the greatest captured_at, or
	// nil when the mission has none.
	GetLatestSample(ctx context.Context, missionID uuid.UUID) (*models.TrackingSample, error)
	GetLatestSamples(ctx context.Context, missionIDs []uuid.UUID) ([]*models.TrackingSample, error)
	GetSamples(ctx context.Context, missionID uuid.UUID, from, to time.Time, limit int) ([]*models.TrackingSample, error)
}

// PositionCache is the fast projection of each mission's current position
type PositionCache interface {
	// SetIfNewer stores pos unless the cached position was captured at the
	// same time or later. It reports whether pos was stored.
	SetIfNewer(ctx context.Context, pos *models.Position) (bool, error)
	// Get returns nil on a cache miss
	Get(ctx context.Context, missionID uuid.UUID) (*models.Position, error)
}
