package main

import (
	"flag"
	"log"

	"github.com/piresc/convoy/internal/pkg/config"
	"github.com/piresc/convoy/internal/pkg/database"
	"github.com/piresc/convoy/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/tracking.env", "dotenv file holding the database settings")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 1, "number of migrations to roll back when direction is down")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	switch *direction {
	case "up":
		err = database.MigrateUp(configs.Database)
	case "down":
		if *steps < 1 {
			zapLogger.Fatal("Steps must be positive", logger.Int("steps", *steps))
		}
		err = database.MigrateDown(configs.Database, *steps)
	default:
		zapLogger.Fatal("Unknown migration direction", logger.String("direction", *direction))
	}
	if err != nil {
		zapLogger.Fatal("Migration failed",
			logger.String("direction", *direction),
			logger.Err(err))
	}
}
