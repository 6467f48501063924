package trips

import (
	"context"

	"github.com/piresc/convoy/internal/pkg/models"
)

// TripGW defines the interface for the external geocoding collaborator
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/convoy/services/trips TripGW
type TripGW interface {
	// Geocode resolves a free-text place name. It returns
	// models.ErrGeocodeNotFound or models.ErrGeocodeUnavailable on failure.
	Geocode(ctx context.Context, query string) (*models.Coordinates, error)
}
