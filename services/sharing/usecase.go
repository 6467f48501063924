package sharing

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/realtime"
)

// PublicHandler receives the anonymous projection of mission events
type PublicHandler func(event models.PublicEvent)

// SharingUC defines the interface for public tracking links
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/convoy/services/sharing SharingUC
type SharingUC interface {
	Issue(ctx context.Context, missionID, requester uuid.UUID) (*models.ShareLink, error)
	ListTokens(ctx context.Context, missionID, requester uuid.UUID) ([]*models.TrackingToken, error)
	Revoke(ctx context.Context, token string, requester uuid.UUID) error

	// Resolve and Watch are called without authentication. Every failure to
	// resolve the token is reported as models.ErrInvalidOrExpiredLink.
	Resolve(ctx context.Context, token string) (*models.PublicTracking, error)
	Watch(ctx context.Context, token string, handler PublicHandler) (*realtime.Watcher, error)
}
