package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/services/tracking"
)

type trackingGW struct {
	bus realtime.Bus
}

// NewTrackingGW creates a gateway publishing positions on the bus
func NewTrackingGW(bus realtime.Bus) tracking.TrackingGW {
	return &trackingGW{bus: bus}
}

// PublishPosition fans the mission's current position out to its scope
func (g *trackingGW) PublishPosition(ctx context.Context, pos *models.Position) error {
	event := models.NewPositionEvent(pos)
	if err := g.bus.Publish(ctx, realtime.ScopeFor(event), event); err != nil {
		return fmt.Errorf("failed to publish position event: %w", err)
	}
	return nil
}
