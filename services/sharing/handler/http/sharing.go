package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	"github.com/piresc/convoy/internal/pkg/models"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/sharing"
)

// invalidLinkMessage is the only failure a public caller ever sees
const invalidLinkMessage = "Invalid or expired tracking link"

// SharingHandler handles HTTP requests for public tracking links
type SharingHandler struct {
	sharingUC sharing.SharingUC
}

// NewSharingHandler creates a new sharing HTTP handler
func NewSharingHandler(sharingUC sharing.SharingUC) *SharingHandler {
	return &SharingHandler{
		sharingUC: sharingUC,
	}
}

// IssueLink creates a tracking link for a mission
func (h *SharingHandler) IssueLink(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sharing.IssueLink")

	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	link, err := h.sharingUC.Issue(c.Request().Context(), missionID, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "mission_id", missionID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Tracking link created", link)
}

// ListLinks returns the links issued for a mission
func (h *SharingHandler) ListLinks(c echo.Context) error {
	missionID, ok := utils.UUIDParam(c, "missionID")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid mission ID")
	}

	tokens, err := h.sharingUC.ListTokens(c.Request().Context(), missionID, middleware.UserID(c))
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking links retrieved", tokens)
}

// RevokeLink disables a tracking link
func (h *SharingHandler) RevokeLink(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sharing.RevokeLink")

	if err := h.sharingUC.Revoke(c.Request().Context(), c.Param("token"), middleware.UserID(c)); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking link revoked", nil)
}

// GetPublicTracking serves the anonymous view behind a tracking link
func (h *SharingHandler) GetPublicTracking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Sharing.GetPublicTracking")

	c.Response().Header().Set("Cache-Control", "no-store")

	public, err := h.sharingUC.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking retrieved", public)
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidOrExpiredLink):
		logger.InfoCtx(c.Request().Context(), "Tracking link rejected",
			logger.String("path", c.Path()))
		return utils.NotFoundResponse(c, invalidLinkMessage)
	case errors.Is(err, models.ErrMissionNotFound):
		return utils.NotFoundResponse(c, "Mission not found")
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, "Not a participant of this mission")
	default:
		logger.ErrorCtx(c.Request().Context(), "Sharing request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
