package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/convoy/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "convoy.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "convoy-test"}, nil)
	require.NoError(t, err)

	l.Info("hello", String("mission_id", "m-1"))
	require.NoError(t, l.Close())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"message":"hello"`)
	assert.Contains(t, string(body), `"service":"convoy-test"`)
	assert.Contains(t, string(body), `"mission_id":"m-1"`)
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "verbose"}, nil)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "Request processed"},
		{http.StatusNotFound, "Client error"},
		{http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			l := &ZapLogger{Logger: zap.New(core)}

			l.LogHTTPRequest(nil, "GET", "/x", "127.0.0.1", "u", "r", tt.status, time.Millisecond, errors.New("boom"))

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.want, logs.All()[0].Message)
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "driver-1")

	h := ZapEchoMiddleware(l)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, h(c))
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "driver-1", fields["user_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestGlobalLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	defer SetGlobalLogger(nil)

	Info("global", Int("n", 1))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "global", logs.All()[0].Message)
}

func TestInfoCtx_CarriesRequestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	defer SetGlobalLogger(nil)

	userID := uuid.New()
	ctx := appctx.WithUserID(appctx.WithRequestID(context.Background(), "req-9"), userID)
	InfoCtx(ctx, "scoped")
	InfoCtx(context.Background(), "bare")

	require.Equal(t, 2, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, userID.String(), fields["user_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
}
