package realtime

import (
	"context"
	"sync"

	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
)

const defaultMemoryBuffer = 64

type memorySub struct {
	scope   string
	events  chan models.MissionEvent
	quit    chan struct{}
	handler Handler
}

func (s *memorySub) run() {
	for {
		select {
		case ev := <-s.events:
			s.handler(ev)
		case <-s.quit:
			return
		}
	}
}

// MemoryBus is an in-process Bus. Each subscriber owns a buffered queue
// drained by its own goroutine; a full queue drops the event and the
// subscriber's fallback pull repairs the gap.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[string]map[*memorySub]struct{}
	buffer int
	closed bool
}

// NewMemoryBus creates an in-process bus. buffer <= 0 uses the default.
func NewMemoryBus(buffer int) *MemoryBus {
	if buffer <= 0 {
		buffer = defaultMemoryBuffer
	}
	return &MemoryBus{
		subs:   make(map[string]map[*memorySub]struct{}),
		buffer: buffer,
	}
}

// Publish delivers event to the subscribers of scope and of the wildcard scope
func (b *MemoryBus) Publish(ctx context.Context, scope string, event models.MissionEvent) error {
	if err := ValidateScope(scope, false); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	for _, set := range []map[*memorySub]struct{}{b.subs[scope], b.subs[WildcardScope]} {
		for sub := range set {
			select {
			case sub.events <- event:
			default:
				logger.Warn("Dropping event for slow subscriber",
					logger.String("scope", sub.scope),
					logger.String("event_type", string(event.Type)))
			}
		}
	}
	return nil
}

// Subscribe attaches handler to scope
func (b *MemoryBus) Subscribe(scope string, handler Handler) (*Subscription, error) {
	if err := ValidateScope(scope, true); err != nil {
		return nil, err
	}

	sub := &memorySub{
		scope:   scope,
		events:  make(chan models.MissionEvent, b.buffer),
		quit:    make(chan struct{}),
		handler: handler,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	if b.subs[scope] == nil {
		b.subs[scope] = make(map[*memorySub]struct{})
	}
	b.subs[scope][sub] = struct{}{}
	b.mu.Unlock()

	go sub.run()

	return newSubscription(scope, func() error {
		b.remove(sub)
		return nil
	}), nil
}

// Unsubscribe detaches a subscription
func (b *MemoryBus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Unsubscribe()
}

func (b *MemoryBus) remove(sub *memorySub) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[sub.scope]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(b.subs, sub.scope)
	}
	close(sub.quit)
}

// SubscriberCount returns the number of live subscriptions on scope
func (b *MemoryBus) SubscriberCount(scope string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[scope])
}

// Close detaches every subscriber and rejects further use
func (b *MemoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for scope, set := range b.subs {
		for sub := range set {
			close(sub.quit)
		}
		delete(b.subs, scope)
	}
}
