package mission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// MissionRepo defines the interface for mission data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/convoy/services/mission MissionRepo
type MissionRepo interface {
	GetMission(ctx context.Context, id uuid.UUID) (*models.Mission, error)
	ListMissions(ctx context.Context, statuses []models.MissionStatus, limit int) ([]*models.Mission, error)
	// UpdateStatus moves the mission from expected to next only if its stored
	// status still equals expected. It returns models.ErrStaleState otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, expected, next models.MissionStatus, at time.Time) error
}
