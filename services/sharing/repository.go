package sharing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
)

// TokenRepo defines the interface for tracking token persistence
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/convoy/services/sharing TokenRepo
type TokenRepo interface {
	CreateToken(ctx context.Context, token *models.TrackingToken) error
	// GetToken returns nil when the token was never issued
	GetToken(ctx context.Context, token string) (*models.TrackingToken, error)
	// RevokeToken keeps the first revocation time when called again
	RevokeToken(ctx context.Context, token string, at time.Time) error
	ListTokens(ctx context.Context, missionID uuid.UUID) ([]*models.TrackingToken, error)
}
