package usecase

import (
	"context"

	"stylus/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput returns a user's profile information.
type ProfileOutput struct {
	User *entity.User
}

// ProfileUsecase defines profile-related operations for a signed-in user.
type ProfileUsecase interface {
	// GetProfile returns the profile of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// SetDarkMode persists the user's dark-mode preference.
	SetDarkMode(ctx context.Context, userID uuid.UUID, enabled bool) error
}
