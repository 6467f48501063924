package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/convoy/internal/pkg/models"
	natspkg "github.com/piresc/convoy/internal/pkg/nats"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishPosition_NATS(t *testing.T) {
	srv := natsserver.RunRandClientPortServer()
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL(), "tracking-gateway-test")
	require.NoError(t, err)
	defer client.Close()

	bus := realtime.NewNATSBus(client)
	missionID := uuid.New()

	dashboard := make(chan models.MissionEvent, 1)
	public := make(chan models.MissionEvent, 1)
	subA, err := bus.Subscribe(missionID.String(), func(e models.MissionEvent) { dashboard <- e })
	require.NoError(t, err)
	defer subA.Unsubscribe()
	subB, err := bus.Subscribe(missionID.String(), func(e models.MissionEvent) { public <- e })
	require.NoError(t, err)
	defer subB.Unsubscribe()
	require.NoError(t, client.GetConn().Flush())

	gw := NewTrackingGW(bus)
	pos := &models.Position{
		MissionID:  missionID,
		Latitude:   48.85,
		Longitude:  2.35,
		CapturedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, gw.PublishPosition(context.Background(), pos))

	for _, ch := range []chan models.MissionEvent{dashboard, public} {
		select {
		case e := <-ch:
			assert.Equal(t, models.EventTypePosition, e.Type)
			require.NotNil(t, e.Position)
			assert.Equal(t, 48.85, e.Position.Latitude)
			assert.True(t, pos.CapturedAt.Equal(e.OccurredAt))
		case <-time.After(2 * time.Second):
			t.Fatal("position event not delivered to every subscriber")
		}
	}
}
