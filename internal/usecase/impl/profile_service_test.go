package impl

import (
	"context"
	"testing"

	"stylus/internal/domain/entity"
	domainerrors "stylus/internal/domain/errors"
	"stylus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(env *testEnv) usecase.ProfileUsecase {
	return NewProfileService(ProfileServiceParams{
		TxManager: env.txManager,
		UserRepo:  env.userRepo,
		Logger:    newDiscardLogger(),
	})
}

func TestProfileService_SetDarkMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := &entity.User{Name: "someuser"}
	require.NoError(t, env.userRepo.Create(ctx, user))

	profiles := newProfileService(env)
	require.NoError(t, profiles.SetDarkMode(ctx, user.ID, true))

	output, err := profiles.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, output.User.DarkMode)

	// Setting the same value again is a no-op.
	require.NoError(t, profiles.SetDarkMode(ctx, user.ID, true))

	require.NoError(t, profiles.SetDarkMode(ctx, user.ID, false))
	output, err = profiles.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, output.User.DarkMode)
}

func TestProfileService_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	profiles := newProfileService(env)

	_, err := profiles.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = profiles.SetDarkMode(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
