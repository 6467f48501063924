package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/convoy/internal/pkg/models"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// (the default) the dotenv file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "convoy")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "convoy")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Tracking config
	configs.Tracking.PollIntervalSec = GetEnvAsInt("TRACKING_POLL_INTERVAL_SEC", 15)
	configs.Tracking.TokenTTLMinutes = GetEnvAsInt("TRACKING_TOKEN_TTL_MINUTES", 0)
	configs.Tracking.PositionCacheTTLSec = GetEnvAsInt("TRACKING_POSITION_CACHE_TTL_SEC", 86400)
	configs.Tracking.PublicBaseURL = GetEnv("TRACKING_PUBLIC_BASE_URL", "")

	// Matcher config
	configs.Matcher.RadiusKm = GetEnvAsFloat("MATCHER_RADIUS_KM", 60)
	configs.Matcher.CandidateLimit = GetEnvAsInt("MATCHER_CANDIDATE_LIMIT", 200)

	// Geocoder config
	configs.Geocoder.BaseURL = GetEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	configs.Geocoder.UserAgent = GetEnv("GEOCODER_USER_AGENT", "convoy-trips")
	configs.Geocoder.TimeoutMs = GetEnvAsInt("GEOCODER_TIMEOUT_MS", 3000)
	configs.Geocoder.CacheTTLSec = GetEnvAsInt("GEOCODER_CACHE_TTL_SEC", 86400)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// ErrMissingJWTSecret is returned by Validate when JWT_SECRET is unset
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Validate reports settings the services cannot run without
func Validate(configs *models.Config) error {
	if configs.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// Seconds converts an integer amount of seconds from config into a duration
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
