package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulServer_Run(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	gs := NewGracefulServer(e, logger.NewNopLogger(), 0, time.Second)

	var hookCalls []int
	gs.OnShutdown(func(ctx context.Context) error {
		hookCalls = append(hookCalls, 1)
		return errors.New("redis already closed")
	})
	gs.OnShutdown(func(ctx context.Context) error {
		hookCalls = append(hookCalls, 2)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return gs.Addr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", gs.Addr().String()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []int{1, 2}, hookCalls)
}

func TestGracefulServer_ListenFailure(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), -1, 0)
	assert.Error(t, gs.Run(context.Background()))
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
}
