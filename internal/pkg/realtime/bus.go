// Package realtime fans mission change events out to any number of
// subscribers per mission and keeps each subscriber converged on the store
// through a periodic fallback pull.
package realtime

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/piresc/convoy/internal/pkg/models"
)

// WildcardScope receives the events of every mission. It can be subscribed
// to but never published on.
const WildcardScope = "*"

var (
	ErrInvalidScope = errors.New("invalid bus scope")
	ErrBusClosed    = errors.New("bus closed")
)

// Handler receives events. Delivery is at-least-once and may be out of order,
// so handlers must be idempotent. Watcher provides that on top of a Bus.
type Handler func(event models.MissionEvent)

// Bus is the publish/subscribe abstraction used by every producer and
// consumer of mission events.
type Bus interface {
	Publish(ctx context.Context, scope string, event models.MissionEvent) error
	Subscribe(scope string, handler Handler) (*Subscription, error)
	Unsubscribe(sub *Subscription) error
}

// Subscription is the handle returned by Subscribe
type Subscription struct {
	scope  string
	once   sync.Once
	cancel func() error
	err    error
}

func newSubscription(scope string, cancel func() error) *Subscription {
	return &Subscription{scope: scope, cancel: cancel}
}

// Scope returns the scope the subscription was opened on
func (s *Subscription) Scope() string {
	return s.scope
}

// Unsubscribe detaches the handler. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.err = s.cancel()
	})
	return s.err
}

// ValidateScope rejects scopes that could alias other missions on a
// subject-based transport.
func ValidateScope(scope string, allowWildcard bool) error {
	if scope == WildcardScope {
		if allowWildcard {
			return nil
		}
		return ErrInvalidScope
	}
	if scope == "" || strings.ContainsAny(scope, ".*> \t\r\n") {
		return ErrInvalidScope
	}
	return nil
}

// ScopeFor returns the scope of a mission
func ScopeFor(event models.MissionEvent) string {
	return event.MissionID.String()
}
