package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/piresc/convoy/internal/pkg/logger"
	"github.com/piresc/convoy/internal/pkg/models"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func newMigrator(config models.DatabaseConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, DSN(config))
	if err != nil {
		return nil, fmt.Errorf("could not start migrations: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration
func MigrateUp(config models.DatabaseConfig) error {
	m, err := newMigrator(config)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("Migrations applied",
		logger.Uint("version", version),
		logger.Bool("dirty", dirty))
	return nil
}

// MigrateDown rolls back the given number of migrations
func MigrateDown(config models.DatabaseConfig, steps int) error {
	m, err := newMigrator(config)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	logger.Info("Migrations rolled back", logger.Int("steps", steps))
	return nil
}
