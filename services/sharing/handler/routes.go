package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/websocket"
	"github.com/piresc/convoy/services/sharing"
	httpHandler "github.com/piresc/convoy/services/sharing/handler/http"
	wsHandler "github.com/piresc/convoy/services/sharing/handler/websocket"
)

// Handler combines all handlers for public tracking links
type Handler struct {
	sharingHTTP *httpHandler.SharingHandler
	publicWS    *wsHandler.PublicStreamHandler
}

// NewHandler creates a new combined handler
func NewHandler(sharingUC sharing.SharingUC, wsManager *websocket.Manager) *Handler {
	return &Handler{
		sharingHTTP: httpHandler.NewSharingHandler(sharingUC),
		publicWS:    wsHandler.NewPublicStreamHandler(sharingUC, wsManager),
	}
}

// RegisterRoutes registers link management on the authenticated group and
// link resolution on the public group
func (h *Handler) RegisterRoutes(authed, public *echo.Group) {
	authed.POST("/missions/:missionID/share", h.sharingHTTP.IssueLink)
	authed.GET("/missions/:missionID/share", h.sharingHTTP.ListLinks)
	authed.DELETE("/share/:token", h.sharingHTTP.RevokeLink)

	track := public.Group("/track")
	track.GET("/:token", h.sharingHTTP.GetPublicTracking)
	track.GET("/:token/stream", h.publicWS.Stream)
}
