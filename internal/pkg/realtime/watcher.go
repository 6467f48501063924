package realtime

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
)

// DefaultPollInterval bounds how stale a subscriber can get after a missed push
const DefaultPollInterval = 30 * time.Second

// ErrStopWatching may be returned by a Fetcher to end the watch, for example
// when the credential that opened it is no longer valid.
var ErrStopWatching = errors.New("stop watching")

// ErrSkipEvent may be returned by a Gate to drop a single event
var ErrSkipEvent = errors.New("skip event")

// Gate inspects every event before the recency guard and the handler see
// it. Returning ErrSkipEvent drops the event; returning ErrStopWatching ends
// the watch at once and nothing after it is delivered.
type Gate func(models.MissionEvent) error

// Fetcher pulls the latest known state of the watched scope from the store
type Fetcher func(ctx context.Context) ([]models.MissionEvent, error)

// Watcher combines a bus subscription, a recency guard and a periodic
// fallback pull into one consumer with a deterministic lifecycle. The
// handler is never invoked concurrently and never sees an event older than
// one it already received for the same mission and event type.
type Watcher struct {
	sub      *Subscription
	fetch    Fetcher
	handler  Handler
	gate     Gate
	guard    *RecencyGuard
	interval time.Duration

	mu       sync.Mutex
	closed   atomic.Bool
	cancel   context.CancelFunc
	once     sync.Once
	done     chan struct{}
	loopDone chan struct{}
	err      error
}

// Watch subscribes to scope, applies an initial pull, then keeps pulling
// every interval until ctx is cancelled, Close is called or fetch returns
// ErrStopWatching. The subscription is opened before the initial pull so an
// event published in between is not lost.
func Watch(ctx context.Context, bus Bus, scope string, interval time.Duration, fetch Fetcher, handler Handler) (*Watcher, error) {
	return WatchGated(ctx, bus, scope, interval, fetch, nil, handler)
}

// WatchGated is Watch with every event, pushed or pulled, passed through
// gate first. A nil gate lets everything through.
func WatchGated(ctx context.Context, bus Bus, scope string, interval time.Duration, fetch Fetcher, gate Gate, handler Handler) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		fetch:    fetch,
		handler:  handler,
		gate:     gate,
		guard:    NewRecencyGuard(),
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}

	sub, err := bus.Subscribe(scope, w.apply)
	if err != nil {
		cancel()
		return nil, err
	}
	w.sub = sub

	if err := w.pull(ctx); err != nil {
		w.shutdown(err)
		close(w.loopDone)
		return nil, err
	}
	if w.closed.Load() {
		// the gate stopped the watch during the initial pull
		<-w.done
		close(w.loopDone)
		return nil, w.err
	}

	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.loopDone)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.shutdown(nil)
			return
		case <-ticker.C:
			err := w.pull(ctx)
			switch {
			case err == nil:
			case errors.Is(err, ErrStopWatching):
				w.shutdown(err)
				return
			case ctx.Err() != nil:
			default:
				logger.Warn("Fallback pull failed",
					logger.String("scope", w.sub.Scope()),
					logger.Err(err))
			}
		}
	}
}

func (w *Watcher) pull(ctx context.Context) error {
	events, err := w.fetch(ctx)
	if err != nil {
		return err
	}
	for _, ev := range events {
		w.apply(ev)
	}
	return nil
}

func (w *Watcher) apply(event models.MissionEvent) {
	w.mu.Lock()
	if w.closed.Load() {
		w.mu.Unlock()
		return
	}
	if w.gate != nil {
		if err := w.gate(event); err != nil {
			stop := errors.Is(err, ErrStopWatching)
			if stop {
				w.closed.Store(true)
			}
			w.mu.Unlock()
			if stop {
				w.shutdown(err)
			}
			return
		}
	}
	if w.guard.Accept(event) {
		w.handler(event)
	}
	w.mu.Unlock()
}

func (w *Watcher) shutdown(err error) {
	w.once.Do(func() {
		w.closed.Store(true)
		w.cancel()
		if uerr := w.sub.Unsubscribe(); uerr != nil {
			logger.Warn("Failed to unsubscribe watcher",
				logger.String("scope", w.sub.Scope()),
				logger.Err(uerr))
		}
		// wait for an in-flight handler call to return
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
		close(w.done)
	})
}

// Stop ends the watch with err, which Err then reports. It does not wait
// for the poll loop and must not be called from inside the handler.
func (w *Watcher) Stop(err error) {
	w.shutdown(err)
}

// Close stops the watcher and waits for its poll loop to exit. It must not
// be called from inside the handler. Calling it more than once is harmless.
func (w *Watcher) Close() {
	w.shutdown(nil)
	<-w.loopDone
}

// Done is closed once the watcher has stopped for any reason
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Err returns the error that stopped the watcher, if any
func (w *Watcher) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}
