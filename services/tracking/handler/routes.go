package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/jwt"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/internal/pkg/websocket"
	"github.com/piresc/convoy/services/tracking"
	httpHandler "github.com/piresc/convoy/services/tracking/handler/http"
	wsHandler "github.com/piresc/convoy/services/tracking/handler/websocket"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *wsHandler.StreamHandler
}

// NewHandler creates a new combined handler
func NewHandler(trackingUC tracking.TrackingUC, wsManager *websocket.Manager) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   wsHandler.NewStreamHandler(trackingUC, wsManager),
	}
}

// RegisterRoutes registers the tracking routes on an authenticated group
func (h *Handler) RegisterRoutes(authed *echo.Group) {
	missions := authed.Group("/missions")
	missions.POST("/:missionID/locations", h.trackingHTTP.SubmitLocation)
	missions.GET("/:missionID/locations", h.trackingHTTP.GetHistory)
	missions.GET("/:missionID/position", h.trackingHTTP.GetPosition)
	missions.GET("/:missionID/stream", h.trackingWS.MissionStream)

	authed.GET("/stream", h.trackingWS.FleetStream, middleware.RequireRole(jwt.RoleDispatcher))
}
