package websocket

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/internal/pkg/websocket"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/tracking"
)

// StreamHandler serves the authenticated live tracking streams
type StreamHandler struct {
	trackingUC tracking.TrackingUC
	wsManager  *websocket.Manager
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(trackingUC tracking.TrackingUC, wsManager *websocket.Manager) *StreamHandler {
	return &StreamHandler{
		trackingUC: trackingUC,
		wsManager:  wsManager,
	}
}

// MissionStream streams one mission to a participant
func (h *StreamHandler) MissionStream(c echo.Context) error {
	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}
	userID := middleware.UserID(c)
	ctx := c.Request().Context()

	return h.wsManager.HandleConnection(c, userID.String(), missionID.String(), func(client *websocket.Client) error {
		w, err := h.trackingUC.WatchMission(ctx, missionID, userID, forward(client))
		if err != nil {
			sendWatchError(client, err)
			return err
		}
		return serve(client, w)
	})
}

// FleetStream streams every mission to a dispatcher
func (h *StreamHandler) FleetStream(c echo.Context) error {
	userID := middleware.UserID(c)
	ctx := c.Request().Context()

	return h.wsManager.HandleConnection(c, userID.String(), realtime.WildcardScope, func(client *websocket.Client) error {
		w, err := h.trackingUC.WatchAll(ctx, forward(client))
		if err != nil {
			sendWatchError(client, err)
			return err
		}
		return serve(client, w)
	})
}

// forward relays watcher events to the client
func forward(client *websocket.Client) realtime.Handler {
	return func(e models.MissionEvent) {
		var event string
		switch e.Type {
		case models.EventTypeStatus:
			event = constants.EventStatusUpdate
		case models.EventTypePosition:
			event = constants.EventPositionUpdate
		default:
			return
		}
		if err := client.Send(event, e); err != nil {
			logger.Debug("Dropping event for disconnected client",
				logger.String("client_id", client.ID),
				logger.Err(err))
			client.Close()
		}
	}
}

// serve blocks until either side ends the stream and then tears the
// watcher down
func serve(client *websocket.Client, w *realtime.Watcher) error {
	defer w.Close()

	select {
	case <-client.Done():
		return nil
	case <-w.Done():
		_ = client.Send(constants.EventStreamClosed, map[string]string{"reason": "watch ended"})
		return w.Err()
	}
}

func sendWatchError(client *websocket.Client, err error) {
	switch {
	case errors.Is(err, models.ErrForbidden):
		_ = client.SendError(constants.ErrorUnauthorized, "Not a participant of this mission")
	case errors.Is(err, models.ErrMissionNotFound):
		_ = client.SendError(constants.ErrorMissionNotFound, "Mission not found")
	default:
		_ = client.SendError(constants.ErrorInternalError, "Unable to open stream")
	}
}
