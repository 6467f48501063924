package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *EnhancedClient {
	cfg := retry.DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.Jitter = false
	return NewEnhancedClientWithRetry(logger.NewNopLogger(), 2*time.Second, cfg)
}

func TestEnhancedClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "convoy-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Lyon"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	err := testClient().GetJSON(context.Background(), srv.URL, map[string]string{"User-Agent": "convoy-test"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Lyon", out.Name)
}

func TestEnhancedClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := testClient().GetJSON(context.Background(), srv.URL, nil, &out)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestEnhancedClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := testClient().GetJSON(context.Background(), srv.URL, nil, &out)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEnhancedClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient()
	var out map[string]interface{}
	err := c.GetJSON(context.Background(), srv.URL, nil, &out)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Len(t, c.CircuitStates(), 1)
}
