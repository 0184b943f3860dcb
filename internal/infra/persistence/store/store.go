// Package store contains the concrete implementation of the persistence
// layer using GORM, backed by SQLite in development and PostgreSQL in
// production.
package store

import (
	"context"
	"log/slog"

	"stylus/config"
	"stylus/internal/domain/lifecycle"
	"stylus/internal/errors"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the credential store selected by the configured driver and
// returns a ready-to-use connection handle. A missing POSTGRES_* variable
// or an unreachable database aborts startup; there is no retry logic.
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Explicit transactions run through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get underlying sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping credential store")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

func open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		logger.Info("Using SQLite database in development mode",
			slog.String("path", cfg.Database.SQLitePath))

		db, err := gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{})

		return db, errors.Wrap(err, "failed to open SQLite store")
	case config.DriverPostgres:
		conn, err := config.PostgresFromEnv()
		if err != nil {
			return nil, err
		}

		logger.Info("Using PostgreSQL database in production mode",
			slog.String("host", conn.Host), slog.String("dbname", conn.DBName))

		db, err := gorm.Open(postgres.Open(conn.DSN()), &gorm.Config{})

		return db, errors.Wrap(err, "failed to open PostgreSQL store")
	default:
		return nil, errors.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}
