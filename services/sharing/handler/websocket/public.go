package websocket

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/internal/pkg/websocket"
	"github.com/piresc/convoy/services/sharing"
)

// PublicStreamHandler serves the live stream behind a tracking link
type PublicStreamHandler struct {
	sharingUC sharing.SharingUC
	wsManager *websocket.Manager
}

// NewPublicStreamHandler creates a new public stream handler
func NewPublicStreamHandler(sharingUC sharing.SharingUC, wsManager *websocket.Manager) *PublicStreamHandler {
	return &PublicStreamHandler{
		sharingUC: sharingUC,
		wsManager: wsManager,
	}
}

// Stream sends the snapshot of the mission behind the link, then relays
// updates until the client leaves or the link stops resolving
func (h *PublicStreamHandler) Stream(c echo.Context) error {
	token := c.Param("token")
	ctx := c.Request().Context()

	return h.wsManager.HandleConnection(c, "", "public", func(client *websocket.Client) error {
		w, err := h.sharingUC.Watch(ctx, token, forward(client))
		if err != nil {
			sendResolveError(client, err)
			return err
		}
		defer w.Close()

		select {
		case <-client.Done():
			return nil
		case <-w.Done():
			_ = client.Send(constants.EventStreamClosed, map[string]string{"reason": "link no longer valid"})
			return nil
		}
	})
}

func forward(client *websocket.Client) sharing.PublicHandler {
	return func(e models.PublicEvent) {
		var (
			event   string
			payload interface{} = e
		)
		switch e.Type {
		case models.EventTypeSnapshot:
			event = constants.EventSnapshot
			payload = models.PublicTracking{Mission: *e.Mission, Tracking: e.Tracking}
		case models.EventTypeStatus:
			event = constants.EventStatusUpdate
		case models.EventTypePosition:
			event = constants.EventPositionUpdate
		default:
			return
		}
		if err := client.Send(event, payload); err != nil {
			logger.Debug("Dropping public event for disconnected client",
				logger.String("client_id", client.ID),
				logger.Err(err))
			client.Close()
		}
	}
}

func sendResolveError(client *websocket.Client, err error) {
	if errors.Is(err, models.ErrInvalidOrExpiredLink) || errors.Is(err, realtime.ErrStopWatching) {
		_ = client.SendError(constants.ErrorInvalidLink, "Invalid or expired tracking link")
		return
	}
	logger.Error("Public stream failed", logger.Err(err))
	_ = client.SendError(constants.ErrorInternalError, "Unable to open stream")
}
