package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/mission"
)

type missionUC struct {
	cfg         *models.Config
	missionRepo mission.MissionRepo
	missionGW   mission.MissionGW
	now         func() time.Time
}

// NewMissionUC creates a new mission use case
func NewMissionUC(
	cfg *models.Config,
	missionRepo mission.MissionRepo,
	missionGW mission.MissionGW,
) mission.MissionUC {
	return &missionUC{
		cfg:         cfg,
		missionRepo: missionRepo,
		missionGW:   missionGW,
		now:         models.Now,
	}
}

// GetMission returns a mission visible to requester
func (uc *missionUC) GetMission(ctx context.Context, id, requester uuid.UUID) (*models.Mission, error) {
	m, err := uc.missionRepo.GetMission(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(requester) {
		return nil, models.ErrForbidden
	}
	return m, nil
}

// ListMissions returns the non-archived missions of the fleet
func (uc *missionUC) ListMissions(ctx context.Context, statuses []models.MissionStatus) ([]*models.Mission, error) {
	if len(statuses) == 0 {
		statuses = []models.MissionStatus{
			models.MissionStatusPending,
			models.MissionStatusInProgress,
			models.MissionStatusCompleted,
			models.MissionStatusCancelled,
		}
	}
	return uc.missionRepo.ListMissions(ctx, statuses, 0)
}

// Transition validates target against the stored status and applies it as a
// conditional write. On success a status event is published; a publish
// failure does not undo the committed transition.
func (uc *missionUC) Transition(ctx context.Context, id uuid.UUID, target models.MissionStatus, requester uuid.UUID) (*models.Mission, error) {
	m, err := uc.missionRepo.GetMission(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(requester) {
		return nil, models.ErrForbidden
	}

	if !CanTransition(m.Status, target) {
		return nil, &models.TransitionError{Current: m.Status, Requested: target}
	}

	at := uc.now()
	if err := uc.missionRepo.UpdateStatus(ctx, id, m.Status, target, at); err != nil {
		if errors.Is(err, models.ErrStaleState) {
			logger.WarnCtx(ctx, "Mission status changed concurrently",
				logger.UUID("mission_id", id),
				logger.String("expected", string(m.Status)),
				logger.String("requested", string(target)))
		}
		return nil, err
	}

	previous := m.Status
	m.Status = target
	m.UpdatedAt = at
	switch target {
	case models.MissionStatusInProgress:
		m.StartedAt = &at
	case models.MissionStatusCompleted:
		m.CompletedAt = &at
	case models.MissionStatusCancelled:
		m.CancelledAt = &at
	}

	logger.InfoCtx(ctx, "Mission status changed",
		logger.UUID("mission_id", id),
		logger.String("from", string(previous)),
		logger.String("to", string(target)))

	if err := uc.missionGW.PublishStatusChanged(ctx, models.NewStatusEvent(id, target, at)); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish status event",
			logger.UUID("mission_id", id),
			logger.Err(err))
	}

	return m, nil
}
