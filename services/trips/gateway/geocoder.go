package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/database"
	httpclient "github.com/piresc/convoy/internal/pkg/http"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/trips"
)

// nominatimPlace is one entry of a Nominatim /search response
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type geocoderGW struct {
	client    *httpclient.EnhancedClient
	redis     *database.RedisClient
	baseURL   string
	userAgent string
	cacheTTL  time.Duration
}

// NewTripGW creates a geocoder backed by a Nominatim compatible endpoint.
// Results are cached in Redis; redisClient may be nil.
func NewTripGW(cfg *models.Config, client *httpclient.EnhancedClient, redisClient *database.RedisClient) trips.TripGW {
	return &geocoderGW{
		client:    client,
		redis:     redisClient,
		baseURL:   strings.TrimRight(cfg.Geocoder.BaseURL, "/"),
		userAgent: cfg.Geocoder.UserAgent,
		cacheTTL:  time.Duration(cfg.Geocoder.CacheTTLSec) * time.Second,
	}
}

func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Geocode resolves query to the coordinates of its best match
func (g *geocoderGW) Geocode(ctx context.Context, query string) (*models.Coordinates, error) {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return nil, models.ErrGeocodeNotFound
	}
	key := fmt.Sprintf(constants.KeyGeocode, normalized)

	if coords := g.cached(ctx, key); coords != nil {
		return coords, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", normalized)

	var places []nominatimPlace
	err := g.client.GetJSON(ctx, g.baseURL+"/search?"+params.Encode(),
		map[string]string{"User-Agent": g.userAgent}, &places)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.WarnCtx(ctx, "Geocoding request failed",
			logger.String("query", normalized),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", models.ErrGeocodeUnavailable, err)
	}
	if len(places) == 0 {
		return nil, models.ErrGeocodeNotFound
	}

	lat, latErr := strconv.ParseFloat(places[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(places[0].Lon, 64)
	if latErr != nil || lngErr != nil || !utils.ValidCoordinates(lat, lng) {
		logger.WarnCtx(ctx, "Geocoder returned unusable coordinates",
			logger.String("query", normalized),
			logger.String("lat", places[0].Lat),
			logger.String("lon", places[0].Lon))
		return nil, models.ErrGeocodeNotFound
	}

	coords := &models.Coordinates{Latitude: lat, Longitude: lng}
	g.store(ctx, key, coords)
	return coords, nil
}

func (g *geocoderGW) cached(ctx context.Context, key string) *models.Coordinates {
	if g.redis == nil {
		return nil
	}
	raw, err := g.redis.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "Geocode cache read failed", logger.String("key", key), logger.Err(err))
		}
		return nil
	}
	var coords models.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		logger.WarnCtx(ctx, "Discarding corrupt geocode cache entry", logger.String("key", key), logger.Err(err))
		return nil
	}
	return &coords
}

func (g *geocoderGW) store(ctx context.Context, key string, coords *models.Coordinates) {
	if g.redis == nil {
		return
	}
	data, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := g.redis.Set(ctx, key, data, g.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Geocode cache write failed", logger.String("key", key), logger.Err(err))
	}
}
