package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stylus/internal/domain/entity"
	"stylus/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	resetMigrateGuard()
	_, err = Migrate(db, discardLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		resetMigrateGuard()
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMigrateReportsCreatedTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	resetMigrateGuard()
	defer resetMigrateGuard()

	result, err := Migrate(db, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "permission", "auth_info", "auth_identity", "auth_token"}, result.Created)
	assert.Empty(t, result.Existing)
}

func TestMigrateSkipsExistingTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	resetMigrateGuard()
	defer resetMigrateGuard()

	_, err = Migrate(db, discardLogger())
	require.NoError(t, err)

	// A second run against the same schema reports every table as existing.
	resetMigrateGuard()
	result, err := Migrate(db, discardLogger())
	require.NoError(t, err)

	assert.Empty(t, result.Created)
	assert.Equal(t, []string{"user", "permission", "auth_info", "auth_identity", "auth_token"}, result.Existing)
}

func TestMigrateGuardShortCircuits(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	resetMigrateGuard()
	defer resetMigrateGuard()

	_, err = Migrate(db, discardLogger())
	require.NoError(t, err)

	// With the guard set, repeated construction does not touch the schema.
	result, err := Migrate(db, discardLogger())
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Existing)
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maxuli", found.Name)
	assert.False(t, found.DarkMode)
	assert.Empty(t, found.Permissions)
}

func TestUserRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepositoryUpdateDarkMode(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, repo.Create(ctx, user))

	user.DarkMode = true
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.DarkMode)
}

func TestUserRepositoryUpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, repo.Create(ctx, user))
	require.False(t, user.CreatedAt.IsZero())
	created := user.CreatedAt

	user.DarkMode = true
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, found.DarkMode)
	assert.WithinDuration(t, created, found.CreatedAt, time.Second)
}

func TestAuthRepositoryUpdatePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	authRepo := NewAuthRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "maxuli@example.com"}
	require.NoError(t, authRepo.CreateAuthInfo(ctx, info))
	require.False(t, info.CreatedAt.IsZero())
	created := info.CreatedAt

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, userRepo.Create(ctx, user))

	info.UserID = &user.ID
	require.NoError(t, authRepo.UpdateAuthInfo(ctx, info))

	found, err := authRepo.FindAuthInfoByID(ctx, info.ID)
	require.NoError(t, err)
	require.NotNil(t, found.UserID)
	assert.WithinDuration(t, created, found.CreatedAt, time.Second)
}

func TestUserRepositoryGrantPermission(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	permRepo := NewPermissionRepository(db)
	ctx := context.Background()

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, userRepo.Create(ctx, user))

	perm := &entity.Permission{Name: entity.PermissionStylus}
	require.NoError(t, permRepo.Create(ctx, perm))

	require.NoError(t, userRepo.GrantPermission(ctx, user.ID, perm.ID))

	found, err := userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, found.Permissions, 1)
	assert.Equal(t, entity.PermissionStylus, found.Permissions[0].Name)
	assert.True(t, found.HasPermission(entity.PermissionStylus))
}

func TestPermissionRepositoryFindByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	_, err := repo.FindByName(ctx, entity.PermissionStylus)
	assert.ErrorIs(t, err, repository.ErrPermissionNotFound)

	perm := &entity.Permission{Name: entity.PermissionStylus}
	require.NoError(t, repo.Create(ctx, perm))

	found, err := repo.FindByName(ctx, entity.PermissionStylus)
	require.NoError(t, err)
	assert.Equal(t, perm.ID, found.ID)

	count, err := repo.CountByName(ctx, entity.PermissionStylus)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthRepositoryIdentityLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "maxuli@example.com"}
	require.NoError(t, repo.CreateAuthInfo(ctx, info))

	identity := &entity.Identity{
		AuthInfoID: info.ID,
		Provider:   entity.ProviderTypeLoginName,
		Identity:   "maxuli",
	}
	require.NoError(t, repo.CreateIdentity(ctx, identity))

	found, err := repo.FindIdentity(ctx, entity.ProviderTypeLoginName, "maxuli")
	require.NoError(t, err)
	assert.Equal(t, info.ID, found.AuthInfoID)

	// Same identity string under a different provider is distinct.
	_, err = repo.FindIdentity(ctx, entity.ProviderTypeGoogle, "maxuli")
	assert.ErrorIs(t, err, repository.ErrIdentityNotFound)

	count, err := repo.CountIdentities(ctx, entity.ProviderTypeLoginName, "maxuli")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthRepositoryDuplicateIdentityRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "maxuli@example.com"}
	require.NoError(t, repo.CreateAuthInfo(ctx, info))

	first := &entity.Identity{AuthInfoID: info.ID, Provider: entity.ProviderTypeLoginName, Identity: "maxuli"}
	require.NoError(t, repo.CreateIdentity(ctx, first))

	second := &entity.Identity{AuthInfoID: info.ID, Provider: entity.ProviderTypeLoginName, Identity: "maxuli"}
	assert.Error(t, repo.CreateIdentity(ctx, second))
}

func TestAuthRepositoryAttachUser(t *testing.T) {
	db := newTestDB(t)
	authRepo := NewAuthRepository(db)
	userRepo := NewUserRepository(db)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "maxuli@example.com"}
	require.NoError(t, authRepo.CreateAuthInfo(ctx, info))

	found, err := authRepo.FindAuthInfoByID(ctx, info.ID)
	require.NoError(t, err)
	assert.Nil(t, found.UserID)

	user := &entity.User{Name: "maxuli"}
	require.NoError(t, userRepo.Create(ctx, user))

	found.UserID = &user.ID
	require.NoError(t, authRepo.UpdateAuthInfo(ctx, found))

	again, err := authRepo.FindAuthInfoByID(ctx, info.ID)
	require.NoError(t, err)
	require.NotNil(t, again.UserID)
	assert.Equal(t, user.ID, *again.UserID)
}

func TestAuthRepositoryTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "maxuli@example.com"}
	require.NoError(t, repo.CreateAuthInfo(ctx, info))

	live := &entity.CredentialToken{
		AuthInfoID: info.ID,
		TokenHash:  "live-hash",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateToken(ctx, live))

	expired := &entity.CredentialToken{
		AuthInfoID: info.ID,
		TokenHash:  "expired-hash",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.CreateToken(ctx, expired))

	found, err := repo.FindTokenByHash(ctx, "live-hash")
	require.NoError(t, err)
	assert.Equal(t, info.ID, found.AuthInfoID)

	require.NoError(t, repo.DeleteExpiredTokens(ctx))
	_, err = repo.FindTokenByHash(ctx, "expired-hash")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, repo.DeleteTokenByHash(ctx, "live-hash"))
	_, err = repo.FindTokenByHash(ctx, "live-hash")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTransactionManagerRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	wantErr := assert.AnError
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Name: "ghost"}
		if createErr := factory.UserRepo().Create(ctx, user); createErr != nil {
			return createErr
		}

		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	var count int64
	require.NoError(t, db.Table("user").Count(&count).Error)
	assert.Zero(t, count)
}

func TestTransactionManagerCommits(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		perm := &entity.Permission{Name: entity.PermissionStylus}
		if createErr := factory.PermissionRepo().Create(ctx, perm); createErr != nil {
			return createErr
		}

		user := &entity.User{Name: "maxuli"}
		if createErr := factory.UserRepo().Create(ctx, user); createErr != nil {
			return createErr
		}

		return factory.UserRepo().GrantPermission(ctx, user.ID, perm.ID)
	})
	require.NoError(t, err)

	repo := NewPermissionRepository(db)
	count, err := repo.CountByName(ctx, entity.PermissionStylus)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
