package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// TripUC defines the interface for shared-ride search and booking
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/convoy/services/trips TripUC
type TripUC interface {
	// Search ranks upcoming trips against the request. A newer search from
	// the same user supersedes this one, which then returns
	// models.ErrStaleSearch.
	Search(ctx context.Context, userID uuid.UUID, req models.TripSearchRequest) (*models.TripSearchResult, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	JoinTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
}
