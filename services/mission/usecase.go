package mission

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// MissionUC defines the interface for mission business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/convoy/services/mission MissionUC
type MissionUC interface {
	GetMission(ctx context.Context, id, requester uuid.UUID) (*models.Mission, error)
	// ListMissions returns the fleet's missions in statuses, every status when empty
	ListMissions(ctx context.Context, statuses []models.MissionStatus) ([]*models.Mission, error)
	Transition(ctx context.Context, id uuid.UUID, target models.MissionStatus, requester uuid.UUID) (*models.Mission, error)
}
