package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/internal/pkg/models"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/trips"
)

// TripHandler handles HTTP requests for shared-ride trips
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// Search ranks upcoming trips against an origin and destination
func (h *TripHandler) Search(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.Search")

	var req models.TripSearchRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	result, err := h.tripUC.Search(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "match_mode", string(result.Mode))
	return utils.SuccessResponse(c, http.StatusOK, "Trips found", result)
}

// GetTrip returns a single trip
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, ok := utils.UUIDParam(c, "tripID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// JoinTrip books a seat for the caller
func (h *TripHandler) JoinTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trips.JoinTrip")

	tripID, ok := utils.UUIDParam(c, "tripID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.JoinTrip(c.Request().Context(), tripID, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip joined", trip)
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrTripNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, models.ErrTripFull):
		return utils.ConflictResponse(c, "Trip is full", nil)
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, "Cannot join your own trip")
	case errors.Is(err, models.ErrStaleSearch):
		return utils.ConflictResponse(c, "Search superseded by a newer request", nil)
	default:
		logger.ErrorCtx(c.Request().Context(), "Trip request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
