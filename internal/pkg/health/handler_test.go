package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	RegisterHealthEndpoints(e, "convoy-tracking")

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "convoy-tracking", info.ServiceName)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "convoy-trips")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealthService_CheckAllHealth(t *testing.T) {
	svc := NewHealthService(logger.NewNopLogger())
	svc.AddChecker("ok", CheckerFunc(func(ctx context.Context) error { return nil }))
	svc.AddChecker("broken", CheckerFunc(func(ctx context.Context) error { return errors.New("down") }))

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, StatusHealthy, resp.Dependencies["ok"].Status)
	assert.Equal(t, StatusUnhealthy, resp.Dependencies["broken"].Status)
	assert.Equal(t, "down", resp.Dependencies["broken"].Error)
}

func TestReadyEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
	}{
		{name: "ready", wantStatus: http.StatusOK},
		{name: "dependency down", checkErr: errors.New("refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService(logger.NewNopLogger())
			svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return tt.checkErr }))

			e := echo.New()
			RegisterEnhancedHealthEndpoints(e, "convoy-tracking", "test", svc)

			for _, path := range []string{"/health/ready", "/health/detailed"} {
				req := httptest.NewRequest(http.MethodGet, path, nil)
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)
				assert.Equal(t, tt.wantStatus, rec.Code, path)
			}
		})
	}
}

func TestPostgresHealthChecker(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	client := database.NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection reset"))

	checker := NewPostgresHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))
	assert.Error(t, checker.CheckHealth(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNATSHealthChecker(t *testing.T) {
	srv := natsserver.RunRandClientPortServer()
	client, err := nats.NewClient(srv.ClientURL(), "health-test")
	require.NoError(t, err)

	checker := NewNATSHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	client.Close()
	srv.Shutdown()
	err = checker.CheckHealth(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "NATS"))
}

func TestNilCheckersAreSkipped(t *testing.T) {
	assert.NoError(t, NewPostgresHealthChecker(nil).CheckHealth(context.Background()))
	assert.NoError(t, NewRedisHealthChecker(nil).CheckHealth(context.Background()))
	assert.NoError(t, NewNATSHealthChecker(nil).CheckHealth(context.Background()))
}
