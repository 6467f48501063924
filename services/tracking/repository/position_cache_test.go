package repository_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/tracking"
	"github.com/piresc/convoy/services/tracking/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (tracking.PositionCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{Tracking: models.TrackingConfig{PositionCacheTTLSec: 3600}}
	return repository.NewPositionCache(cfg, client), mr
}

func TestPositionCache_RoundTrip(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	heading := 270.0
	pos := &models.Position{
		MissionID:  uuid.New(),
		Latitude:   48.85,
		Longitude:  2.35,
		Heading:    &heading,
		Geohash:    "u09tvw0f6",
		CapturedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	stored, err := cache.SetIfNewer(ctx, pos)
	require.NoError(t, err)
	assert.True(t, stored)

	got, err := cache.Get(ctx, pos.MissionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, pos.Latitude, got.Latitude)
	assert.Equal(t, pos.Longitude, got.Longitude)
	assert.Nil(t, got.Speed)
	require.NotNil(t, got.Heading)
	assert.Equal(t, 270.0, *got.Heading)
	assert.True(t, pos.CapturedAt.Equal(got.CapturedAt))

	key := fmt.Sprintf(constants.KeyMissionPosition, pos.MissionID)
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestPositionCache_OlderSampleNeverOverwrites(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()
	missionID := uuid.New()

	a := &models.Position{MissionID: missionID, Latitude: 48.85, Longitude: 2.35,
		CapturedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	b := &models.Position{MissionID: missionID, Latitude: 48.80, Longitude: 2.30,
		CapturedAt: time.Date(2024, 5, 1, 9, 59, 50, 0, time.UTC)}

	stored, err := cache.SetIfNewer(ctx, a)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = cache.SetIfNewer(ctx, b)
	require.NoError(t, err)
	assert.False(t, stored)

	got, err := cache.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 48.85, got.Latitude)
	assert.Equal(t, 2.35, got.Longitude)
}

func TestPositionCache_EqualCaptureTimeKeepsLaterSample(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()
	missionID := uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	first := &models.Position{MissionID: missionID, Latitude: 48.85, Longitude: 2.35, CapturedAt: at, SampleID: 7}
	later := &models.Position{MissionID: missionID, Latitude: 48.86, Longitude: 2.36, CapturedAt: at, SampleID: 8}

	stored, err := cache.SetIfNewer(ctx, first)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = cache.SetIfNewer(ctx, later)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = cache.SetIfNewer(ctx, first)
	require.NoError(t, err)
	assert.False(t, stored)

	got, err := cache.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 48.86, got.Latitude)
	assert.Equal(t, int64(8), got.SampleID)
}

func TestPositionCache_Miss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPositionCache_CorruptEntry(t *testing.T) {
	cache, mr := setupCache(t)
	missionID := uuid.New()
	mr.HSet(fmt.Sprintf(constants.KeyMissionPosition, missionID), constants.FieldLatitude, "north")

	_, err := cache.Get(context.Background(), missionID)
	assert.Error(t, err)
}
