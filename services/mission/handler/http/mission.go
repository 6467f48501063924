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
	"github.com/piresc/convoy/services/mission"
)

// MissionHandler handles HTTP requests for mission operations
type MissionHandler struct {
	missionUC mission.MissionUC
}

// NewMissionHandler creates a new mission HTTP handler
func NewMissionHandler(missionUC mission.MissionUC) *MissionHandler {
	return &MissionHandler{
		missionUC: missionUC,
	}
}

// transitionConflict is returned with a 409 so the caller can re-read
type transitionConflict struct {
	Current   models.MissionStatus `json:"current"`
	Requested models.MissionStatus `json:"requested"`
}

// GetMission returns a mission to one of its participants
func (h *MissionHandler) GetMission(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Mission.GetMission")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	m, err := h.missionUC.GetMission(c.Request().Context(), missionID, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mission retrieved", m)
}

// ListMissions returns the fleet's missions, optionally filtered by a
// comma-separated status query parameter
func (h *MissionHandler) ListMissions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Mission.ListMissions")

	var statuses []models.MissionStatus
	if raw := c.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := models.MissionStatus(strings.TrimSpace(part))
			if !status.IsValid() {
				return utils.BadRequestResponse(c, "Unknown status")
			}
			statuses = append(statuses, status)
		}
	}

	missions, err := h.missionUC.ListMissions(c.Request().Context(), statuses)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Missions retrieved", missions)
}

// Transition moves a mission to the requested status
func (h *MissionHandler) Transition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Mission.Transition")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	var req models.TransitionRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if !req.Status.IsValid() {
		return utils.BadRequestResponse(c, "Unknown status")
	}

	m, err := h.missionUC.Transition(c.Request().Context(), missionID, req.Status, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mission status updated", m)
}

func (h *MissionHandler) mapError(c echo.Context, err error) error {
	var terr *models.TransitionError
	switch {
	case errors.As(err, &terr):
		return utils.ConflictResponse(c, terr.Error(), transitionConflict{
			Current:   terr.Current,
			Requested: terr.Requested,
		})
	case errors.Is(err, models.ErrStaleState):
		return utils.ConflictResponse(c, "Mission status changed, reload and retry", nil)
	case errors.Is(err, models.ErrMissionNotFound):
		return utils.NotFoundResponse(c, "Mission not found")
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, "Not a participant of this mission")
	default:
		logger.ErrorCtx(c.Request().Context(), "Mission request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
