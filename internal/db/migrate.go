package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"outreach-engine/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed halfway.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the schema at addr to migrations.Version. A dirty schema
// is reported, never forced.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	err = mg.Migrate(migrations.Version)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	case err != nil:
		return err
	}
	logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
	return nil
}
