package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/internal/pkg/models"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/tracking"
)

// TrackingHandler handles HTTP requests for location ingestion and reads
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// SubmitLocation stores a location report from a mission participant
func (h *TrackingHandler) SubmitLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.SubmitLocation")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	var report models.LocationReport
	if err := c.Bind(&report); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	report.MissionID = missionID
	report.ReporterID = middleware.UserID(c)

	result, err := h.trackingUC.Submit(c.Request().Context(), report)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "mission_id", missionID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Location recorded", result)
}

// GetPosition returns the mission's current position
func (h *TrackingHandler) GetPosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.GetPosition")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	pos, err := h.trackingUC.CurrentPosition(c.Request().Context(), missionID, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}
	if pos == nil {
		return utils.NotFoundResponse(c, "No position reported yet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position retrieved", pos)
}

// GetHistory returns the samples captured in the from/to query window
func (h *TrackingHandler) GetHistory(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.GetHistory")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	from, err := parseTimeParam(c, "from")
	if err != nil {
		return utils.BadRequestResponse(c, "from must be an RFC3339 timestamp")
	}
	to, err := parseTimeParam(c, "to")
	if err != nil {
		return utils.BadRequestResponse(c, "to must be an RFC3339 timestamp")
	}

	samples, err := h.trackingUC.History(c.Request().Context(), missionID, middleware.UserID(c), from, to)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "History retrieved", samples)
}

func parseTimeParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidSample):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, models.ErrMissionNotFound):
		return utils.NotFoundResponse(c, "Mission not found")
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, "Not a participant of this mission")
	default:
		logger.ErrorCtx(c.Request().Context(), "Tracking request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
