package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/convoy/internal/pkg/circuitbreaker"
	"github.com/piresc/convoy/internal/pkg/config"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/health"
	httpclient "github.com/piresc/convoy/internal/pkg/http"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/pkg/server"
	"github.com/piresc/convoy/internal/utils"
	"github.com/piresc/convoy/services/trips/gateway"
	"github.com/piresc/convoy/services/trips/handler"
	"github.com/piresc/convoy/services/trips/repository"
	"github.com/piresc/convoy/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if err := config.Validate(configs); err != nil {
		zapLogger.Fatal("Invalid configuration", logger.Err(err))
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client for the geocode cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize repository
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	geocodeClient := httpclient.NewEnhancedClient(zapLogger, time.Duration(configs.Geocoder.TimeoutMs)*time.Millisecond)
	tripGW := gateway.NewTripGW(configs, geocodeClient, redisClient)

	// Initialize usecase
	tripUC := usecase.NewTripUC(configs, tripRepo, tripGW)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = config.Seconds(configs.Server.ReadTimeout)
	e.Server.WriteTimeout = config.Seconds(configs.Server.WriteTimeout)

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize enhanced health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("geocoder", health.CheckerFunc(func(context.Context) error {
		for host, state := range geocodeClient.CircuitStates() {
			if state == circuitbreaker.StateOpen.String() {
				return fmt.Errorf("geocoder circuit open for %s", host)
			}
		}
		return nil
	}))

	health.RegisterHealthEndpoints(e, appName)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	authed := e.Group("/v1", middleware.JWTAuthMiddleware(configs.JWT))
	handler.NewHandler(tripUC).RegisterRoutes(authed)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, config.Seconds(configs.Server.ShutdownTimeout))
	srv.OnShutdown(func(context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
