package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	natspkg "github.com/piresc/convoy/internal/pkg/nats"
)

// NATSBus is a Bus backed by core NATS subjects, one per mission. Every
// Subscribe opens its own NATS subscription, so independent subscribers on
// the same mission each receive every event.
type NATSBus struct {
	client *natspkg.Client
}

// NewNATSBus creates a bus on top of a connected client
func NewNATSBus(client *natspkg.Client) *NATSBus {
	return &NATSBus{client: client}
}

// SubjectFor maps a scope onto its NATS subject
func SubjectFor(scope string) (string, error) {
	if err := ValidateScope(scope, true); err != nil {
		return "", err
	}
	if scope == WildcardScope {
		return constants.SubjectAllMissionEvents, nil
	}
	return fmt.Sprintf(constants.SubjectMissionEvents, scope), nil
}

// Publish sends event on the subject of scope
func (b *NATSBus) Publish(ctx context.Context, scope string, event models.MissionEvent) error {
	if err := ValidateScope(scope, false); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, _ := SubjectFor(scope)
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal mission event: %w", err)
	}

	if err := b.client.Publish(subject, data); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish mission event",
			logger.String("subject", subject),
			logger.Err(err))
		return err
	}
	return nil
}

// Subscribe attaches handler to scope
func (b *NATSBus) Subscribe(scope string, handler Handler) (*Subscription, error) {
	subject, err := SubjectFor(scope)
	if err != nil {
		return nil, err
	}

	sub, err := b.client.Subscribe(subject, func(msg *nats.Msg) {
		var event models.MissionEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Discarding malformed mission event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, err
	}

	return newSubscription(scope, func() error {
		err := sub.Unsubscribe()
		if errors.Is(err, nats.ErrConnectionClosed) || errors.Is(err, nats.ErrBadSubscription) {
			return nil
		}
		return err
	}), nil
}

// Unsubscribe detaches a subscription
func (b *NATSBus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Unsubscribe()
}
