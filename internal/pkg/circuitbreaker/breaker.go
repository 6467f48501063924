package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/convoy/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // counter reset period while closed
	Timeout          time.Duration // open duration before probing
	FailureThreshold uint32        // consecutive failures that open the circuit
	IsFailure        func(err error) bool
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
	}
}

// Counts holds the counters of the current window
type Counts struct {
	Requests            uint32
	Failures            uint32
	ConsecutiveFailures uint32
}

// CircuitBreaker stops calling a failing dependency for a while after
// FailureThreshold consecutive failures.
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu     sync.Mutex
	state  State
	counts Counts
	expiry time.Time
}

// New creates a new circuit breaker
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = DefaultConfig(config.Name).IsFailure
	}
	cb := &CircuitBreaker{config: config, logger: l, now: time.Now}
	cb.expiry = cb.now().Add(config.Interval)
	return cb
}

// Execute runs fn unless the circuit is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	switch cb.state {
	case StateClosed:
		if cb.expiry.Before(now) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if now.Before(cb.expiry) {
			return ErrCircuitBreakerOpen
		}
		cb.setState(StateHalfOpen)
	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}

	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.config.IsFailure(err) {
		cb.counts.ConsecutiveFailures = 0
		if cb.state == StateHalfOpen {
			cb.setState(StateClosed)
		}
		return
	}

	cb.counts.Failures++
	cb.counts.ConsecutiveFailures++
	if cb.state == StateHalfOpen || cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold {
		cb.setState(StateOpen)
	}
}

// setState must be called with mu held
func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state
	cb.counts = Counts{}

	switch state {
	case StateOpen:
		cb.expiry = cb.now().Add(cb.config.Timeout)
	case StateClosed:
		cb.expiry = cb.now().Add(cb.config.Interval)
	}

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()))
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Manager keeps one circuit breaker per dependency name
type Manager struct {
	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
	logger   *logger.ZapLogger
}

// NewManager creates a new circuit breaker manager
func NewManager(l *logger.ZapLogger) *Manager {
	return &Manager{breakers: make(map[string]*CircuitBreaker), logger: l}
}

// Get returns the breaker for name, creating it with the default config
func (m *Manager) Get(name string) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()

	cb, ok := m.breakers[name]
	if !ok {
		cb = New(DefaultConfig(name), m.logger)
		m.breakers[name] = cb
	}
	return cb
}

// Execute runs fn through the breaker for name
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	return m.Get(name).Execute(ctx, fn)
}

// States returns the current state of every breaker, for health reporting
func (m *Manager) States() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.breakers))
	for name, cb := range m.breakers {
		out[name] = cb.State().String()
	}
	return out
}
