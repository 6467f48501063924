package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/trips"
)

type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	sessions *searchSessions
	now      func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		sessions: newSearchSessions(),
		now:      models.Now,
	}
}

// Search geocodes the request, loads upcoming trips and ranks them. When
// geocoding fails the result is the plain text match.
func (uc *tripUC) Search(ctx context.Context, userID uuid.UUID, req models.TripSearchRequest) (*models.TripSearchResult, error) {
	ctx, seq, release := uc.sessions.begin(ctx, userID)
	defer release()

	anchor := Anchor{
		Origin:            req.Origin,
		OriginCoords:      req.OriginCoords,
		Destination:       req.Destination,
		DestinationCoords: req.DestinationCoords,
	}

	geocoded := true
	for _, leg := range []struct {
		query  string
		coords **models.Coordinates
	}{
		{req.Origin, &anchor.OriginCoords},
		{req.Destination, &anchor.DestinationCoords},
	} {
		if *leg.coords != nil || leg.query == "" {
			continue
		}
		coords, err := uc.tripGW.Geocode(ctx, leg.query)
		if err != nil {
			if !uc.sessions.isLatest(userID, seq) {
				return nil, models.ErrStaleSearch
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.WarnCtx(ctx, "Geocoding failed, falling back to text search",
				logger.String("query", leg.query),
				logger.Err(err))
			geocoded = false
			break
		}
		*leg.coords = coords
	}

	after := uc.now()
	if req.DepartureAfter != nil {
		after = *req.DepartureAfter
	}
	candidates, err := uc.tripRepo.ListUpcomingTrips(ctx, after, uc.cfg.Matcher.CandidateLimit)
	if err != nil {
		if !uc.sessions.isLatest(userID, seq) {
			return nil, models.ErrStaleSearch
		}
		return nil, err
	}

	var result *models.TripSearchResult
	if geocoded {
		result = Match(anchor, candidates, uc.cfg.Matcher.RadiusKm)
	} else {
		result = &models.TripSearchResult{Mode: models.MatchModeText, Matches: TextMatch(anchor, candidates)}
	}

	if !uc.sessions.isLatest(userID, seq) {
		return nil, models.ErrStaleSearch
	}

	logger.DebugCtx(ctx, "Trip search completed",
		logger.UUID("user_id", userID),
		logger.String("mode", string(result.Mode)),
		logger.Int("candidates", len(candidates)),
		logger.Int("matches", len(result.Matches)))
	return result, nil
}

// GetTrip retrieves a trip by ID
func (uc *tripUC) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, id)
}

// JoinTrip books a seat on a trip for userID. Joining twice is harmless.
func (uc *tripUC) JoinTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.JoinTrip(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, models.ErrTripFull) {
			logger.InfoCtx(ctx, "Trip full",
				logger.UUID("trip_id", tripID),
				logger.UUID("user_id", userID))
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Trip joined",
		logger.UUID("trip_id", tripID),
		logger.UUID("user_id", userID),
		logger.Int("seats_left", trip.SeatsLeft()))
	return trip, nil
}
