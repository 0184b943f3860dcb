package repository

import (
	"context"
	"errors"

	"stylus/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthInfoNotFound is returned when an authentication record is not found.
	ErrAuthInfoNotFound = errors.New("auth info not found")
	// ErrIdentityNotFound is returned when no identity matches a (provider, identity) pair.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrTokenNotFound is returned when a credential token is not found.
	ErrTokenNotFound = errors.New("credential token not found")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthInfo persists a new authentication record.
	CreateAuthInfo(ctx context.Context, info *entity.AuthInfo) error

	// FindAuthInfoByID retrieves an authentication record by its ID.
	FindAuthInfoByID(ctx context.Context, id uuid.UUID) (*entity.AuthInfo, error)

	// UpdateAuthInfo updates an existing authentication record, including the user link.
	UpdateAuthInfo(ctx context.Context, info *entity.AuthInfo) error

	// CreateIdentity persists a new (provider, identity) pair under an AuthInfo.
	CreateIdentity(ctx context.Context, identity *entity.Identity) error

	// FindIdentity retrieves an identity by its (provider, identity-string) pair.
	FindIdentity(ctx context.Context, provider entity.ProviderType, identity string) (*entity.Identity, error)

	// CountIdentities returns the number of identities matching the pair.
	CountIdentities(ctx context.Context, provider entity.ProviderType, identity string) (int64, error)

	// CreateToken persists a new credential token, representing a remembered session.
	CreateToken(ctx context.Context, token *entity.CredentialToken) error

	// FindTokenByHash retrieves a credential token record by its stored hash.
	FindTokenByHash(ctx context.Context, hash string) (*entity.CredentialToken, error)

	// DeleteTokenByHash deletes a credential token by its hash, ending the session.
	DeleteTokenByHash(ctx context.Context, hash string) error

	// DeleteExpiredTokens removes all credential tokens past their expiry.
	DeleteExpiredTokens(ctx context.Context) error
}
