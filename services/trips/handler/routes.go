package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/services/trips"
	httpHandler "github.com/piresc/convoy/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the trip routes on an authenticated group
func (h *Handler) RegisterRoutes(authed *echo.Group) {
	group := authed.Group("/trips")
	group.POST("/search", h.tripHTTP.Search)
	group.GET("/:tripID", h.tripHTTP.GetTrip)
	group.POST("/:tripID/join", h.tripHTTP.JoinTrip)
}
