package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/constants"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/tracking"
)

// setIfNewerScript writes the position hash only when (captured_at in unix
// microseconds, sample id) is strictly greater than the cached pair, the
// same order the sample store uses to pick the current position.
var setIfNewerScript = redis.NewScript(`
local cur = redis.call('HMGET', KEYS[1], 'ts', 'sid')
if cur[1] then
	local ts, nts = tonumber(cur[1]), tonumber(ARGV[1])
	if ts > nts or (ts == nts and tonumber(cur[2] or '0') >= tonumber(ARGV[9])) then
		return 0
	end
end
redis.call('HSET', KEYS[1],
	'ts', ARGV[1],
	'sid', ARGV[9],
	'lat', ARGV[2],
	'lng', ARGV[3],
	'speed', ARGV[4],
	'heading', ARGV[5],
	'geohash', ARGV[6],
	'captured_at', ARGV[7])
if tonumber(ARGV[8]) > 0 then
	redis.call('EXPIRE', KEYS[1], ARGV[8])
end
return 1
`)

type positionCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewPositionCache creates the Redis projection of current positions
func NewPositionCache(cfg *models.Config, redisClient *database.RedisClient) tracking.PositionCache {
	return &positionCache{
		redis: redisClient,
		ttl:   time.Duration(cfg.Tracking.PositionCacheTTLSec) * time.Second,
	}
}

func positionKey(missionID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyMissionPosition, missionID)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptional(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetIfNewer stores pos unless a later position, or one captured at the
// same time from a later sample, is already cached
func (c *positionCache) SetIfNewer(ctx context.Context, pos *models.Position) (bool, error) {
	res, err := c.redis.RunScript(ctx, setIfNewerScript,
		[]string{positionKey(pos.MissionID)},
		pos.CapturedAt.UnixMicro(),
		strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		formatOptional(pos.Speed),
		formatOptional(pos.Heading),
		pos.Geohash,
		models.FormatTime(pos.CapturedAt),
		int64(c.ttl/time.Second),
		pos.SampleID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cache position: %w", err)
	}
	stored, _ := res.(int64)
	return stored == 1, nil
}

// Get returns the cached position, or nil on a miss
func (c *positionCache) Get(ctx context.Context, missionID uuid.UUID) (*models.Position, error) {
	fields, err := c.redis.HGetAll(ctx, positionKey(missionID))
	if err != nil {
		return nil, fmt.Errorf("failed to read cached position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	pos := &models.Position{MissionID: missionID, Geohash: fields[constants.FieldGeohash]}
	if pos.Latitude, err = strconv.ParseFloat(fields[constants.FieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt cached latitude: %w", err)
	}
	if pos.Longitude, err = strconv.ParseFloat(fields[constants.FieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt cached longitude: %w", err)
	}
	if pos.Speed, err = parseOptional(fields[constants.FieldSpeed]); err != nil {
		return nil, fmt.Errorf("corrupt cached speed: %w", err)
	}
	if pos.Heading, err = parseOptional(fields[constants.FieldHeading]); err != nil {
		return nil, fmt.Errorf("corrupt cached heading: %w", err)
	}
	if sid := fields[constants.FieldSampleID]; sid != "" {
		if pos.SampleID, err = strconv.ParseInt(sid, 10, 64); err != nil {
			return nil, fmt.Errorf("corrupt cached sample id: %w", err)
		}
	}
	if pos.CapturedAt, err = time.Parse(time.RFC3339Nano, fields[constants.FieldCapturedAt]); err != nil {
		return nil, fmt.Errorf("corrupt cached captured_at: %w", err)
	}
	return pos, nil
}
