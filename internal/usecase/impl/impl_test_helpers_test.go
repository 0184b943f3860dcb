package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stylus/internal/domain/entity"
	"stylus/internal/domain/repository"
	"stylus/internal/domain/service"
	"stylus/internal/infra/persistence/model"
	"stylus/internal/infra/persistence/store"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens an in-memory store with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.PermissionModel{},
		&model.AuthInfoModel{},
		&model.IdentityModel{},
		&model.CredentialTokenModel{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

type testEnv struct {
	db        *gorm.DB
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	permRepo  repository.PermissionRepository
	authRepo  repository.AuthRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	return &testEnv{
		db:        db,
		txManager: store.NewTransactionManager(db),
		userRepo:  store.NewUserRepository(db),
		permRepo:  store.NewPermissionRepository(db),
		authRepo:  store.NewAuthRepository(db),
	}
}

// stubHasher is a transparent stand-in for the bcrypt hasher.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues deterministic tokens derived from the auth info ID.
type stubTokenService struct {
	refreshClaims *service.Claims
	refreshErr    error
}

func (s *stubTokenService) GenerateTokens(authInfoID uuid.UUID, _ []string) (string, string, error) {
	return "access-" + authInfoID.String(), "refresh-" + authInfoID.String(), nil
}

func (s *stubTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return nil, repository.ErrTokenNotFound
}

func (s *stubTokenService) ValidateRefreshToken(string) (*service.Claims, error) {
	return s.refreshClaims, s.refreshErr
}

func (s *stubTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

// stubOAuth returns a fixed OAuth user for any ID token.
type stubOAuth struct {
	user *service.OAuthUser
	err  error
}

func (s *stubOAuth) VerifyIDToken(_ context.Context, _ string) (*service.OAuthUser, error) {
	return s.user, s.err
}

func (s *stubOAuth) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}
