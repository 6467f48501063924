package mission

import (
	"context"

	"github.com/piresc/convoy/internal/pkg/models"
)

// MissionGW defines the interface for mission event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/convoy/services/mission MissionGW
type MissionGW interface {
	PublishStatusChanged(ctx context.Context, event models.MissionEvent) error
}
