package impl

import (
	"context"
	"testing"

	"stylus/internal/domain/entity"
	"stylus/internal/domain/service"
	"stylus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(env *testEnv, google service.OAuthAuthService) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		TxManager:    env.txManager,
		UserRepo:     env.userRepo,
		AuthRepo:     env.authRepo,
		TokenService: &stubTokenService{},
		Hasher:       stubHasher{},
		GoogleAuth:   google,
		Logger:       newDiscardLogger(),
	})
}

func TestSessionService_CurrentUser_NoLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := newSessionService(env, nil).CurrentUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionService_CurrentUser_UnknownAuthInfo(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	user, err := newSessionService(env, nil).CurrentUser(context.Background(), &id)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionService_CurrentUser_UnlinkedAuthInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	info := &entity.AuthInfo{Email: "someone@example.com"}
	require.NoError(t, env.authRepo.CreateAuthInfo(ctx, info))

	user, err := newSessionService(env, nil).CurrentUser(ctx, &info.ID)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionService_ResolveUser_CreatesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sessions := newSessionService(env, nil)

	first, err := sessions.ResolveUser(ctx, entity.ProviderTypeGoogle, "google-sub-123", "someone@example.com")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Resolving the same identity again returns the same user.
	second, err := sessions.ResolveUser(ctx, entity.ProviderTypeGoogle, "google-sub-123", "someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, env.db.Table("user").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSessionService_ResolveUser_LinksExistingAuthInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// An identity that authenticated before any user existed.
	info := &entity.AuthInfo{Email: "someone@example.com"}
	require.NoError(t, env.authRepo.CreateAuthInfo(ctx, info))
	require.NoError(t, env.authRepo.CreateIdentity(ctx, &entity.Identity{
		AuthInfoID: info.ID,
		Provider:   entity.ProviderTypeGoogle,
		Identity:   "google-sub-456",
	}))

	sessions := newSessionService(env, nil)
	user, err := sessions.ResolveUser(ctx, entity.ProviderTypeGoogle, "google-sub-456", "someone@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	linked, err := env.authRepo.FindAuthInfoByID(ctx, info.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.UserID)
	assert.Equal(t, user.ID, *linked.UserID)

	current, err := sessions.CurrentUser(ctx, &info.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestSessionService_HasPermission(t *testing.T) {
	env := newTestEnv(t)
	sessions := newSessionService(env, nil)

	assert.False(t, sessions.HasPermission(nil, entity.PermissionStylus))

	user := &entity.User{Permissions: []*entity.Permission{{Name: entity.PermissionStylus}}}
	assert.True(t, sessions.HasPermission(user, entity.PermissionStylus))
	assert.False(t, sessions.HasPermission(user, "OTHER"))
}

func TestSessionService_Accessors(t *testing.T) {
	env := newTestEnv(t)
	google := &stubOAuth{}
	sessions := newSessionService(env, google)

	assert.NotNil(t, sessions.Tokens())
	assert.NotNil(t, sessions.PasswordHasher())

	providers := sessions.OAuthProviders()
	require.Len(t, providers, 1)
	assert.Equal(t, entity.ProviderTypeGoogle, providers[0].Provider())

	// Without a configured provider the list is empty.
	assert.Empty(t, newSessionService(env, nil).OAuthProviders())
}
