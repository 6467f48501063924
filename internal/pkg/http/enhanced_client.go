package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/convoy/internal/pkg/circuitbreaker"
	"github.com/piresc/convoy/internal/pkg/logger"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/pkg/retry"
)

// maxBodyBytes caps decoded response bodies
const maxBodyBytes = 1 << 20

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// EnhancedClient wraps http.Client with retry, a per-host circuit breaker
// and New Relic external segments.
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration) *EnhancedClient {
	return NewEnhancedClientWithRetry(log, timeout, retry.DefaultConfig())
}

// NewEnhancedClientWithRetry creates a client with a custom retry policy
func NewEnhancedClientWithRetry(log *logger.ZapLogger, timeout time.Duration, cfg retry.Config) *EnhancedClient {
	return &EnhancedClient{
		client:         &http.Client{Timeout: timeout},
		retrier:        retry.New(cfg, log),
		circuitManager: circuitbreaker.NewManager(log),
		logger:         log,
	}
}

// Do executes req. 5xx responses are retried and count against the host's
// circuit breaker; 4xx responses are returned to the caller untouched.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	host := req.URL.Host
	if host == "" {
		host = "unknown"
	}

	var resp *http.Response
	err := c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req.Clone(ctx))
			})
			if err != nil {
				return err
			}
			if r.StatusCode >= 500 {
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: "server error"}
			}
			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetJSON performs a GET with the given headers and decodes a 2xx JSON body
// into out.
func (c *EnhancedClient) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: "unexpected status"}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CircuitStates returns the state of every host breaker
func (c *EnhancedClient) CircuitStates() map[string]string {
	return c.circuitManager.States()
}
