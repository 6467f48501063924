package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/services/mission"
)

type missionGW struct {
	bus realtime.Bus
}

// NewMissionGW creates a gateway publishing mission events on the bus
func NewMissionGW(bus realtime.Bus) mission.MissionGW {
	return &missionGW{bus: bus}
}

// PublishStatusChanged fans a committed transition out to the mission scope
func (g *missionGW) PublishStatusChanged(ctx context.Context, event models.MissionEvent) error {
	if err := g.bus.Publish(ctx, realtime.ScopeFor(event), event); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}
	return nil
}
