package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/convoy/internal/pkg/config"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/health"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/middleware"
	natspkg "github.com/piresc/convoy/internal/pkg/nats"
	nrpkg "github.com/piresc/convoy/internal/pkg/newrelic"
	"github.com/piresc/convoy/internal/pkg/realtime"
	"github.com/piresc/convoy/internal/pkg/server"
	wspkg "github.com/piresc/convoy/internal/pkg/websocket"
	"github.com/piresc/convoy/internal/utils"
	missionGateway "github.com/piresc/convoy/services/mission/gateway"
	missionHandler "github.com/piresc/convoy/services/mission/handler"
	missionRepository "github.com/piresc/convoy/services/mission/repository"
	missionUsecase "github.com/piresc/convoy/services/mission/usecase"
	sharingHandler "github.com/piresc/convoy/services/sharing/handler"
	sharingRepository "github.com/piresc/convoy/services/sharing/repository"
	sharingUsecase "github.com/piresc/convoy/services/sharing/usecase"
	trackingGateway "github.com/piresc/convoy/services/tracking/gateway"
	trackingHandler "github.com/piresc/convoy/services/tracking/handler"
	trackingRepository "github.com/piresc/convoy/services/tracking/repository"
	trackingUsecase "github.com/piresc/convoy/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configPath := "config/tracking.env"
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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS and the realtime bus on top of it
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	bus := realtime.NewNATSBus(natsClient)

	// Initialize repositories
	missionRepo := missionRepository.NewMissionRepository(configs, postgresClient.GetDB())
	trackingRepo := trackingRepository.NewTrackingRepository(configs, postgresClient.GetDB())
	positionCache := trackingRepository.NewPositionCache(configs, redisClient)
	tokenRepo := sharingRepository.NewTokenRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	missionGW := missionGateway.NewMissionGW(bus)
	trackingGW := trackingGateway.NewTrackingGW(bus)

	// Initialize usecases
	missionUC := missionUsecase.NewMissionUC(configs, missionRepo, missionGW)
	trackingUC := trackingUsecase.NewTrackingUC(configs, missionRepo, trackingRepo, positionCache, trackingGW, bus)
	sharingUC := sharingUsecase.NewSharingUC(configs, missionRepo, tokenRepo, trackingUC, bus)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = config.Seconds(configs.Server.ReadTimeout)

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
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	health.RegisterHealthEndpoints(e, appName)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	wsManager := wspkg.NewManager()
	authed := e.Group("/v1", middleware.JWTAuthMiddleware(configs.JWT))
	public := e.Group("/public")

	missionHandler.NewHandler(missionUC).RegisterRoutes(authed)
	trackingHandler.NewHandler(trackingUC, wsManager).RegisterRoutes(authed)
	sharingHandler.NewHandler(sharingUC, wsManager).RegisterRoutes(authed, public)

	// Streams are hijacked connections, so they are closed explicitly
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, config.Seconds(configs.Server.ShutdownTimeout))
	srv.OnShutdown(func(context.Context) error {
		wsManager.CloseAll()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
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
