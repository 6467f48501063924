package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/piresc/convoy/internal/pkg/database"
	httpclient "github.com/piresc/convoy/internal/pkg/http"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoder(t *testing.T, handler http.HandlerFunc) (*geocoderGW, *miniredis.Miniredis, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	redisClient, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 1
	retryCfg.BaseDelay = time.Millisecond
	client := httpclient.NewEnhancedClientWithRetry(logger.NewNopLogger(), time.Second, retryCfg)

	cfg := &models.Config{Geocoder: models.GeocoderConfig{
		BaseURL:     srv.URL + "/",
		UserAgent:   "convoy-test",
		CacheTTLSec: 3600,
	}}
	return NewTripGW(cfg, client, redisClient).(*geocoderGW), mr, &hits
}

func TestGeocode_ResolvesAndCaches(t *testing.T) {
	g, mr, hits := newGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "paris", r.URL.Query().Get("q"))
		assert.Equal(t, "convoy-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"48.8566","lon":"2.3522","display_name":"Paris, France"}]`))
	})

	coords, err := g.Geocode(context.Background(), "  Paris ")
	require.NoError(t, err)
	assert.Equal(t, 48.8566, coords.Latitude)
	assert.Equal(t, 2.3522, coords.Longitude)

	assert.True(t, mr.Exists("geocode:paris"))
	assert.Equal(t, time.Hour, mr.TTL("geocode:paris"))

	again, err := g.Geocode(context.Background(), "PARIS")
	require.NoError(t, err)
	assert.Equal(t, coords, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestGeocode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		status  int
		body    string
		wantErr error
	}{
		{name: "no result", query: "nowhere", status: http.StatusOK, body: `[]`, wantErr: models.ErrGeocodeNotFound},
		{name: "unparseable coordinates", query: "x", status: http.StatusOK, body: `[{"lat":"abc","lon":"1"}]`, wantErr: models.ErrGeocodeNotFound},
		{name: "out of range", query: "x", status: http.StatusOK, body: `[{"lat":"91","lon":"1"}]`, wantErr: models.ErrGeocodeNotFound},
		{name: "server error", query: "lyon", status: http.StatusBadGateway, body: `oops`, wantErr: models.ErrGeocodeUnavailable},
		{name: "rate limited", query: "lyon", status: http.StatusTooManyRequests, body: `{}`, wantErr: models.ErrGeocodeUnavailable},
		{name: "empty query", query: "   ", wantErr: models.ErrGeocodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, mr, _ := newGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			coords, err := g.Geocode(context.Background(), tt.query)

			assert.Nil(t, coords)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, mr.Keys())
		})
	}
}

func TestGeocode_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	g, _, _ := newGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`[]`))
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Geocode(ctx, "paris")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeocode_CorruptCacheEntryIsRefetched(t *testing.T) {
	g, mr, hits := newGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"45.764","lon":"4.8357"}]`))
	})
	require.NoError(t, mr.Set("geocode:lyon", "not json"))

	coords, err := g.Geocode(context.Background(), "Lyon")

	require.NoError(t, err)
	assert.Equal(t, 45.764, coords.Latitude)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}
