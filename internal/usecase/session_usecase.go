package usecase

import (
	"context"

	"stylus/internal/domain/entity"
	"stylus/internal/domain/service"

	"github.com/google/uuid"
)

// SessionUsecase resolves the domain user behind an authenticated identity
// and exposes read-only access to the shared authentication services.
//
// ResolveUser is the single path by which users come into existence for
// externally-authenticated identities.
type SessionUsecase interface {
	// CurrentUser returns the user linked to the given authentication
	// record. A nil authInfoID means no login is active and yields nil,
	// not an error. An AuthInfo without a linked user also yields nil.
	CurrentUser(ctx context.Context, authInfoID *uuid.UUID) (*entity.User, error)

	// ResolveUser finds or creates the AuthInfo for the given identity
	// pair and lazily creates and links a user when none is attached yet.
	ResolveUser(ctx context.Context, provider entity.ProviderType, identity, email string) (*entity.User, error)

	// HasPermission reports whether the user holds the named permission.
	// A nil user never holds any permission.
	HasPermission(user *entity.User, name string) bool

	// Tokens returns the shared token service.
	Tokens() service.TokenService

	// PasswordHasher returns the shared password-hashing service.
	PasswordHasher() service.PasswordHasher

	// OAuthProviders returns the configured external OAuth services.
	OAuthProviders() []service.OAuthAuthService
}
