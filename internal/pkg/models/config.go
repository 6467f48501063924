package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Tracking TrackingConfig
	Matcher  MatcherConfig
	Geocoder GeocoderConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT validation configuration. Tokens are minted by the
// identity service; this side only verifies them.
type JWTConfig struct {
	Secret string
	Issuer string
}

// TrackingConfig contains tracking and sharing configuration
type TrackingConfig struct {
	PollIntervalSec     int // fallback pull interval for realtime subscribers
	TokenTTLMinutes     int // 0 means share links never expire on their own
	PositionCacheTTLSec int
	PublicBaseURL       string
}

// MatcherConfig contains proximity matcher configuration
type MatcherConfig struct {
	RadiusKm       float64 `json:"radius_km"`
	CandidateLimit int     `json:"candidate_limit"`
}

// GeocoderConfig contains the external geocoding collaborator configuration
type GeocoderConfig struct {
	BaseURL     string
	UserAgent   string
	TimeoutMs   int
	CacheTTLSec int
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
