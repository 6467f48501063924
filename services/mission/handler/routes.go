package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/jwt"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/services/mission"
	httpHandler "github.com/piresc/convoy/services/mission/handler/http"
)

// Handler combines all handlers for the mission service
type Handler struct {
	missionHTTP *httpHandler.MissionHandler
}

// NewHandler creates a new combined handler
func NewHandler(missionUC mission.MissionUC) *Handler {
	return &Handler{
		missionHTTP: httpHandler.NewMissionHandler(missionUC),
	}
}

// RegisterRoutes registers the mission routes on an authenticated group
func (h *Handler) RegisterRoutes(authed *echo.Group) {
	missions := authed.Group("/missions")
	missions.GET("", h.missionHTTP.ListMissions, middleware.RequireRole(jwt.RoleDispatcher))
	missions.GET("/:missionID", h.missionHTTP.GetMission)
	missions.POST("/:missionID/transition", h.missionHTTP.Transition)
}
