package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/mazation/praktikaBack/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the gorm connection selected by config. Postgres is
// used in deployments; the pure-Go sqlite driver keeps local runs and
// tests free of external services.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Database.Host, cfg.Database.User, cfg.Database.Password, cfg.Database.Name, cfg.Database.Port)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Database.File), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Database.File, err)
		}
		return db, nil
	default:
		log.Error().Str("driver", cfg.Database.Driver).Msg("Unknown database driver")
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
