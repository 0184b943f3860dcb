package service

import (
	"context"

	"stylus/internal/domain/entity"
)

// OAuthUser represents user information returned by an OAuth provider.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string              // User's email address.
	Name          string              // User's display name.
	Provider      entity.ProviderType // The OAuth provider.
	AvatarURL     string              // URL to the user's profile picture.
	EmailVerified bool                // Whether the provider verified the email.
}

// OAuthAuthService defines the interface for OAuth authentication operations.
// This is specifically for ID token verification (like Google ID tokens).
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// Provider returns the OAuth provider type.
	Provider() entity.ProviderType
}
