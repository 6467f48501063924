package tracking

import (
	"context"

	"github.com/piresc/convoy/internal/pkg/models"
)

// TrackingGW defines the interface for position event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/convoy/services/tracking TrackingGW
type TrackingGW interface {
	PublishPosition(ctx context.Context, pos *models.Position) error
}
