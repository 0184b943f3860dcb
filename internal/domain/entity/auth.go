package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the origin of an identity record.
type ProviderType string

const (
	// ProviderTypeLoginName is the local login-name provider used for
	// password-based accounts.
	ProviderTypeLoginName ProviderType = "loginname"
	// ProviderTypeGoogle is the Google OAuth provider.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// AuthInfo links the authentication record of an external or local identity
// to at most one domain User. UserID stays nil until a User is attached,
// which happens lazily on first resolution.
type AuthInfo struct {
	ID           uuid.UUID  // The unique ID for this authentication record.
	UserID       *uuid.UUID // The linked domain user, nil until attached.
	Email        string     // The contact email registered with this identity.
	PasswordHash string     // bcrypt hash, set only for password-based accounts.
	Identities   []*Identity
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is one (provider, identity-string) pair belonging to an AuthInfo.
// A password account has a loginname identity; a linked Google account adds
// a google identity on the same AuthInfo.
type Identity struct {
	ID         uuid.UUID
	AuthInfoID uuid.UUID    // The owning AuthInfo.
	Provider   ProviderType // The provider tag, e.g. "loginname" or "google".
	Identity   string       // The provider-scoped identity string.
	CreatedAt  time.Time
}

// CredentialToken is a persisted remember-me/session token bound to an
// AuthInfo. Only a SHA-256 hash of the raw token is stored.
type CredentialToken struct {
	ID         uuid.UUID
	AuthInfoID uuid.UUID // The owning AuthInfo.
	TokenHash  string    // SHA-256 hash of the raw token value.
	ExpiresAt  time.Time // When this token stops being accepted.
	CreatedAt  time.Time
}
