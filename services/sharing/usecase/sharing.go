package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/services/mission"
	"github.com/piresc/convoy/services/sharing"
	"github.com/piresc/convoy/services/tracking"
)

const (
	tokenBytes = 32
	publicPath = "/public/track/"
)

// tokenLength is the encoded length of a token
var tokenLength = base64.RawURLEncoding.EncodedLen(tokenBytes)

type sharingUC struct {
	cfg         *models.Config
	missionRepo mission.MissionRepo
	tokenRepo   sharing.TokenRepo
	trackingUC  tracking.TrackingUC
	bus         realtime.Bus
	now         func() time.Time
}

// NewSharingUC creates a new sharing use case
func NewSharingUC(
	cfg *models.Config,
	missionRepo mission.MissionRepo,
	tokenRepo sharing.TokenRepo,
	trackingUC tracking.TrackingUC,
	bus realtime.Bus,
) sharing.SharingUC {
	return &sharingUC{
		cfg:         cfg,
		missionRepo: missionRepo,
		tokenRepo:   tokenRepo,
		trackingUC:  trackingUC,
		bus:         bus,
		now:         models.Now,
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate tracking token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func wellFormed(token string) bool {
	if len(token) != tokenLength {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(token)
	return err == nil
}

func (uc *sharingUC) participantMission(ctx context.Context, missionID, requester uuid.UUID) (*models.Mission, error) {
	m, err := uc.missionRepo.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !m.IsParticipant(requester) {
		return nil, models.ErrForbidden
	}
	return m, nil
}

// Issue creates a public tracking link for a mission the requester owns
// or drives
func (uc *sharingUC) Issue(ctx context.Context, missionID, requester uuid.UUID) (*models.ShareLink, error) {
	m, err := uc.participantMission(ctx, missionID, requester)
	if err != nil {
		return nil, err
	}

	value, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	token := &models.TrackingToken{
		Token:     value,
		MissionID: m.ID,
		CreatedBy: requester,
		CreatedAt: now,
	}
	if ttl := uc.cfg.Tracking.TokenTTLMinutes; ttl > 0 {
		expires := now.Add(time.Duration(ttl) * time.Minute)
		token.ExpiresAt = &expires
	}

	if err := uc.tokenRepo.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Tracking link issued",
		logger.UUID("mission_id", m.ID),
		logger.UUID("created_by", requester))

	link := &models.ShareLink{Token: value, ExpiresAt: token.ExpiresAt}
	if base := strings.TrimRight(uc.cfg.Tracking.PublicBaseURL, "/"); base != "" {
		link.URL = base + publicPath + value
	}
	return link, nil
}

// ListTokens returns the links issued for a mission
func (uc *sharingUC) ListTokens(ctx context.Context, missionID, requester uuid.UUID) ([]*models.TrackingToken, error) {
	if _, err := uc.participantMission(ctx, missionID, requester); err != nil {
		return nil, err
	}
	return uc.tokenRepo.ListTokens(ctx, missionID)
}

// Revoke disables a link. Revoking an already revoked link succeeds.
func (uc *sharingUC) Revoke(ctx context.Context, value string, requester uuid.UUID) error {
	if !wellFormed(value) {
		return models.ErrInvalidOrExpiredLink
	}
	token, err := uc.tokenRepo.GetToken(ctx, value)
	if err != nil {
		return err
	}
	if token == nil {
		return models.ErrInvalidOrExpiredLink
	}
	if _, err := uc.participantMission(ctx, token.MissionID, requester); err != nil {
		return err
	}
	if token.Revoked {
		return nil
	}

	at := uc.now()
	if err := uc.tokenRepo.RevokeToken(ctx, value, at); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Tracking link revoked",
		logger.UUID("mission_id", token.MissionID),
		logger.UUID("revoked_by", requester))

	// open streams also catch the revocation on their next fallback pull
	event := models.NewLinkRevokedEvent(token.MissionID, value, at)
	if err := uc.bus.Publish(ctx, token.MissionID.String(), event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish link revocation",
			logger.UUID("mission_id", token.MissionID),
			logger.Err(err))
	}
	return nil
}

// resolveMission maps a token to its mission. Malformed, unknown, expired
// and revoked tokens, as well as tokens of archived missions, all yield
// models.ErrInvalidOrExpiredLink.
func (uc *sharingUC) resolveMission(ctx context.Context, value string) (*models.TrackingToken, *models.Mission, error) {
	if !wellFormed(value) {
		return nil, nil, models.ErrInvalidOrExpiredLink
	}

	token, err := uc.tokenRepo.GetToken(ctx, value)
	if err != nil {
		return nil, nil, err
	}
	if token == nil || !token.Usable(uc.now()) {
		return nil, nil, models.ErrInvalidOrExpiredLink
	}

	m, err := uc.missionRepo.GetMission(ctx, token.MissionID)
	if err != nil {
		if errors.Is(err, models.ErrMissionNotFound) {
			return nil, nil, models.ErrInvalidOrExpiredLink
		}
		return nil, nil, err
	}
	if m.Archived {
		return nil, nil, models.ErrInvalidOrExpiredLink
	}
	return token, m, nil
}

// Resolve returns the public projection of the mission behind a token
func (uc *sharingUC) Resolve(ctx context.Context, value string) (*models.PublicTracking, error) {
	_, m, err := uc.resolveMission(ctx, value)
	if err != nil {
		return nil, err
	}

	pos, err := uc.trackingUC.LatestPosition(ctx, m)
	if err != nil {
		return nil, err
	}

	return &models.PublicTracking{
		Mission:  models.NewPublicMission(m),
		Tracking: models.NewPublicPosition(pos),
	}, nil
}

// Watch resolves the token and only then subscribes to the mission it
// grants. The handler first receives one snapshot event, then live updates.
// The stream ends as soon as the link is revoked or expires: a revocation
// event or an expired deadline stops it on the spot, and each fallback pull
// checks the token again in case the event was missed.
func (uc *sharingUC) Watch(ctx context.Context, value string, handler sharing.PublicHandler) (*realtime.Watcher, error) {
	token, m, err := uc.resolveMission(ctx, value)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		initial  = true
		snapshot = models.PublicEvent{Type: models.EventTypeSnapshot}
		resolved = m
	)
	publicMission := models.NewPublicMission(m)
	snapshot.Mission = &publicMission

	fetch := func(ctx context.Context) ([]models.MissionEvent, error) {
		current := resolved
		resolved = nil
		if current == nil {
			var err error
			if _, current, err = uc.resolveMission(ctx, value); err != nil {
				if errors.Is(err, models.ErrInvalidOrExpiredLink) {
					return nil, realtime.ErrStopWatching
				}
				return nil, err
			}
		}
		return uc.trackingUC.Snapshot(ctx, current)
	}
	gate := func(e models.MissionEvent) error {
		switch e.Type {
		case models.EventTypeStatus, models.EventTypePosition:
		case models.EventTypeLinkRevoked:
			if e.Token == value {
				return realtime.ErrStopWatching
			}
			return realtime.ErrSkipEvent
		default:
			return realtime.ErrSkipEvent
		}
		if token.ExpiresAt != nil && !uc.now().Before(*token.ExpiresAt) {
			return realtime.ErrStopWatching
		}
		return nil
	}
	relay := func(e models.MissionEvent) {
		mu.Lock()
		defer mu.Unlock()
		if !initial {
			handler(models.NewPublicEvent(e))
			return
		}
		switch e.Type {
		case models.EventTypeStatus:
			snapshot.Mission.Status = e.Status
		case models.EventTypePosition:
			snapshot.Tracking = models.NewPublicPosition(e.Position)
		}
	}

	interval := time.Duration(uc.cfg.Tracking.PollIntervalSec) * time.Second
	w, err := realtime.WatchGated(ctx, uc.bus, m.ID.String(), interval, fetch, gate, relay)
	if err != nil {
		if errors.Is(err, realtime.ErrStopWatching) {
			return nil, models.ErrInvalidOrExpiredLink
		}
		return nil, err
	}

	if token.ExpiresAt != nil {
		expiry := time.AfterFunc(token.ExpiresAt.Sub(uc.now()), func() {
			w.Stop(realtime.ErrStopWatching)
		})
		go func() {
			<-w.Done()
			expiry.Stop()
		}()
	}

	mu.Lock()
	initial = false
	handler(snapshot)
	mu.Unlock()
	return w, nil
}
