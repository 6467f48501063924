package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
)

// TrackingUC defines the interface for location ingestion and live views
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/convoy/services/tracking TrackingUC
type TrackingUC interface {
	Submit(ctx context.Context, report models.LocationReport) (*models.SubmitResult, error)
	CurrentPosition(ctx context.Context, missionID, requester uuid.UUID) (*models.Position, error)
	History(ctx context.Context, missionID, requester uuid.UUID, from, to time.Time) ([]*models.TrackingSample, error)

	// LatestPosition and Snapshot skip authorization; callers must have
	// already established access to m.
	LatestPosition(ctx context.Context, m *models.Mission) (*models.Position, error)
	Snapshot(ctx context.Context, m *models.Mission) ([]models.MissionEvent, error)

	WatchMission(ctx context.Context, missionID, requester uuid.UUID, handler realtime.Handler) (*realtime.Watcher, error)
	WatchAll(ctx context.Context, handler realtime.Handler) (*realtime.Watcher, error)
}
