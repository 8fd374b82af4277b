package database

import (
	"errors"
	"fmt"

	"garagehub/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies pending schema migrations from the configured
// directory. A fully up-to-date schema is not an error.
func RunMigrations(config utils.DatabaseConfig) error {
	m, err := migrate.New("file://"+config.MigrationsDir, DSN(config))
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
