package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/mission"
	"github.com/piresc/convoy/services/tracking"
)

const (
	historyLimit          = 5000
	dashboardMissionLimit = 500
)

// activeStatuses are the missions shown on the fleet-wide dashboard
var activeStatuses = []models.MissionStatus{
	models.MissionStatusPending,
	models.MissionStatusInProgress,
}

type trackingUC struct {
	cfg          *models.Config
	missionRepo  mission.MissionRepo
	trackingRepo tracking.TrackingRepo
	cache        tracking.PositionCache
	trackingGW   tracking.TrackingGW
	bus          realtime.Bus
	now          func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	missionRepo mission.MissionRepo,
	trackingRepo tracking.TrackingRepo,
	cache tracking.PositionCache,
	trackingGW tracking.TrackingGW,
	bus realtime.Bus,
) tracking.TrackingUC {
	return &trackingUC{
		cfg:          cfg,
		missionRepo:  missionRepo,
		trackingRepo: trackingRepo,
		cache:        cache,
		trackingGW:   trackingGW,
		bus:          bus,
		now:          models.Now,
	}
}

func invalidSample(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{models.ErrInvalidSample}, args...)...)
}

func validateReport(r models.LocationReport) error {
	switch {
	case r.MissionID == uuid.Nil:
		return invalidSample("mission_id is required")
	case r.Latitude == nil:
		return invalidSample("latitude is required")
	case r.Longitude == nil:
		return invalidSample("longitude is required")
	case math.IsNaN(*r.Latitude) || *r.Latitude < -90 || *r.Latitude > 90:
		return invalidSample("latitude must be within [-90, 90]")
	case math.IsNaN(*r.Longitude) || *r.Longitude < -180 || *r.Longitude > 180:
		return invalidSample("longitude must be within [-180, 180]")
	case r.Speed != nil && (math.IsNaN(*r.Speed) || *r.Speed < 0):
		return invalidSample("speed must be >= 0")
	case r.Heading != nil && (math.IsNaN(*r.Heading) || *r.Heading < 0 || *r.Heading >= 360):
		return invalidSample("heading must be within [0, 360)")
	case r.CapturedAt.IsZero():
		return invalidSample("captured_at is required")
	}
	return nil
}

// Submit validates and stores a location report, then recomputes and
// publishes the mission's current position. Reports for terminal missions
// are kept; their position is flagged stale.
func (uc *trackingUC) Submit(ctx context.Context, report models.LocationReport) (*models.SubmitResult, error) {
	if err := validateReport(report); err != nil {
		return nil, err
	}

	m, err := uc.missionRepo.GetMission(ctx, report.MissionID)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(report.ReporterID) {
		return nil, models.ErrForbidden
	}

	sample := &models.TrackingSample{
		MissionID:  m.ID,
		Latitude:   *report.Latitude,
		Longitude:  *report.Longitude,
		Speed:      report.Speed,
		Heading:    report.Heading,
		Geohash:    utils.EncodeGeohash(*report.Latitude, *report.Longitude, utils.SampleGeohashPrecision),
		CapturedAt: report.CapturedAt.UTC(),
		ReceivedAt: uc.now(),
	}

	stored, err := uc.trackingRepo.StoreSample(ctx, sample)
	if err != nil {
		return nil, err
	}

	latest, err := uc.trackingRepo.GetLatestSample(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		latest = stored
	}

	current := models.PositionFromSample(latest)
	current.Stale = m.Status.IsTerminal()

	if _, err := uc.cache.SetIfNewer(ctx, current); err != nil {
		logger.WarnCtx(ctx, "Failed to refresh position projection",
			logger.UUID("mission_id", m.ID),
			logger.Err(err))
	}

	if err := uc.trackingGW.PublishPosition(ctx, current); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish position",
			logger.UUID("mission_id", m.ID),
			logger.Err(err))
	}

	if stored.CapturedAt.Before(current.CapturedAt) {
		logger.DebugCtx(ctx, "Accepted out-of-order sample",
			logger.UUID("mission_id", m.ID),
			logger.Time("captured_at", stored.CapturedAt),
			logger.Time("current_captured_at", current.CapturedAt))
	}

	return &models.SubmitResult{Sample: stored, Current: current}, nil
}

func (uc *trackingUC) participantMission(ctx context.Context, missionID, requester uuid.UUID) (*models.Mission, error) {
	m, err := uc.missionRepo.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(requester) {
		return nil, models.ErrForbidden
	}
	return m, nil
}

// CurrentPosition returns the current position of a mission to one of its
// participants, or nil when no sample exists yet
func (uc *trackingUC) CurrentPosition(ctx context.Context, missionID, requester uuid.UUID) (*models.Position, error) {
	m, err := uc.participantMission(ctx, missionID, requester)
	if err != nil {
		return nil, err
	}
	return uc.LatestPosition(ctx, m)
}

// LatestPosition reads the projection first and falls back to the store,
// refilling the projection on a miss
func (uc *trackingUC) LatestPosition(ctx context.Context, m *models.Mission) (*models.Position, error) {
	pos, err := uc.cache.Get(ctx, m.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Position projection unavailable, reading store",
			logger.UUID("mission_id", m.ID),
			logger.Err(err))
	}
	if pos == nil {
		latest, err := uc.trackingRepo.GetLatestSample(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return nil, nil
		}
		pos = models.PositionFromSample(latest)
		if _, err := uc.cache.SetIfNewer(ctx, pos); err != nil {
			logger.WarnCtx(ctx, "Failed to refill position projection",
				logger.UUID("mission_id", m.ID),
				logger.Err(err))
		}
	}
	pos.Stale = m.Status.IsTerminal()
	return pos, nil
}

// History returns the samples captured between from and to. A zero from
// means the beginning of the mission; a zero to means now.
func (uc *trackingUC) History(ctx context.Context, missionID, requester uuid.UUID, from, to time.Time) ([]*models.TrackingSample, error) {
	if _, err := uc.participantMission(ctx, missionID, requester); err != nil {
		return nil, err
	}
	if to.IsZero() {
		to = uc.now()
	}
	if from.After(to) {
		return nil, invalidSample("from must not be after to")
	}
	return uc.trackingRepo.GetSamples(ctx, missionID, from, to, historyLimit)
}

// Snapshot returns the latest known status and position of m as events
func (uc *trackingUC) Snapshot(ctx context.Context, m *models.Mission) ([]models.MissionEvent, error) {
	events := []models.MissionEvent{models.NewStatusEvent(m.ID, m.Status, m.UpdatedAt)}

	pos, err := uc.LatestPosition(ctx, m)
	if err != nil {
		return nil, err
	}
	if pos != nil {
		events = append(events, models.NewPositionEvent(pos))
	}
	return events, nil
}

func (uc *trackingUC) pollInterval() time.Duration {
	return time.Duration(uc.cfg.Tracking.PollIntervalSec) * time.Second
}

// WatchMission streams one mission's events to a participant
func (uc *trackingUC) WatchMission(ctx context.Context, missionID, requester uuid.UUID, handler realtime.Handler) (*realtime.Watcher, error) {
	if _, err := uc.participantMission(ctx, missionID, requester); err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) ([]models.MissionEvent, error) {
		m, err := uc.missionRepo.GetMission(ctx, missionID)
		if err != nil {
			return nil, err
		}
		return uc.Snapshot(ctx, m)
	}
	return realtime.Watch(ctx, uc.bus, missionID.String(), uc.pollInterval(), fetch, handler)
}

// WatchAll streams the events of every mission, pulling the active ones
// as the fallback
func (uc *trackingUC) WatchAll(ctx context.Context, handler realtime.Handler) (*realtime.Watcher, error) {
	return realtime.Watch(ctx, uc.bus, realtime.WildcardScope, uc.pollInterval(), uc.activeSnapshot, handler)
}

func (uc *trackingUC) activeSnapshot(ctx context.Context) ([]models.MissionEvent, error) {
	missions, err := uc.missionRepo.ListMissions(ctx, activeStatuses, dashboardMissionLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(missions))
	events := make([]models.MissionEvent, 0, 2*len(missions))
	for i, m := range missions {
		ids[i] = m.ID
		events = append(events, models.NewStatusEvent(m.ID, m.Status, m.UpdatedAt))
	}

	samples, err := uc.trackingRepo.GetLatestSamples(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range samples {
		events = append(events, models.NewPositionEvent(models.PositionFromSample(s)))
	}
	return events, nil
}
