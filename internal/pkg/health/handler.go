package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewBuildInfo fills build information from the environment
func NewBuildInfo(serviceName string) BuildInfo {
	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    "unknown",
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if v := os.Getenv("GIT_COMMIT"); v != "" {
		info.GitCommit = v
	}
	if h, err := os.Hostname(); err == nil {
		info.Hostname = h
	}
	return info
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	info := NewBuildInfo(serviceName)
	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now().UTC()
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterHealthEndpoints registers the basic health endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": serviceName,
		})
	})
}
