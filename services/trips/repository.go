package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/convoy/services/trips TripRepo
type TripRepo interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	// ListUpcomingTrips returns trips departing at or after after, soonest first
	ListUpcomingTrips(ctx context.Context, after time.Time, limit int) ([]*models.Trip, error)
	// JoinTrip adds userID to the participants unless already present. It
	// returns models.ErrTripFull when no seat is left and models.ErrForbidden
	// when userID owns the trip.
	JoinTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
}
