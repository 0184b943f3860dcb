package store

import (
	"log/slog"
	"sync"

	"stylus/internal/errors"
	"stylus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Registration order is fixed: user, permission, auth_info, auth_identity,
// auth_token. The user_permissions join table is created alongside user.
var registeredModels = []any{
	&model.UserModel{},
	&model.PermissionModel{},
	&model.AuthInfoModel{},
	&model.IdentityModel{},
	&model.CredentialTokenModel{},
}

// MigrateResult reports which tables were created and which already
// existed, so callers can tell "using existing database" apart from a
// genuine schema-creation failure.
type MigrateResult struct {
	Created  []string
	Existing []string
}

var migrateGuard struct {
	mu   sync.Mutex
	done bool
}

// Migrate ensures the tables behind the registered models exist.
//
// Already-existing tables are the expected steady state and are only
// logged; any other creation failure propagates. A process-lifetime flag
// prevents repeated construction from re-attempting creation.
func Migrate(db *gorm.DB, logger *slog.Logger) (*MigrateResult, error) {
	migrateGuard.mu.Lock()
	defer migrateGuard.mu.Unlock()

	if migrateGuard.done {
		logger.Info("Using existing database")

		return &MigrateResult{}, nil
	}

	result := &MigrateResult{}
	migrator := db.Migrator()

	var missing []any
	for _, m := range registeredModels {
		name := tableName(db, m)
		if migrator.HasTable(m) {
			result.Existing = append(result.Existing, name)

			continue
		}
		missing = append(missing, m)
		result.Created = append(result.Created, name)
	}

	if len(missing) > 0 {
		// AutoMigrate resolves foreign-key ordering across the batch.
		if err := db.AutoMigrate(missing...); err != nil {
			return nil, errors.Wrap(err, "failed to create schema")
		}
	}

	if len(result.Created) > 0 {
		logger.Info("Created database", slog.Any("tables", result.Created))
	} else {
		logger.Info("Using existing database")
	}

	migrateGuard.done = true

	return result, nil
}

func tableName(db *gorm.DB, m any) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(m); err != nil {
		return ""
	}

	return stmt.Schema.Table
}

// resetMigrateGuard clears the process-lifetime creation flag. Test hook.
func resetMigrateGuard() {
	migrateGuard.mu.Lock()
	defer migrateGuard.mu.Unlock()
	migrateGuard.done = false
}
