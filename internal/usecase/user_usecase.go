// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stylus/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new local account.
type RegisterUserInput struct {
	Name      string
	LoginName string
	Email     string
	Password  string
}

// LoginInput defines the data required for a local login.
type LoginInput struct {
	LoginName  string
	Password   string
	RememberMe bool
}

// GoogleSignInInput carries the ID token obtained from the Google sign-in flow.
type GoogleSignInInput struct {
	IDToken string
}

// RememberedLoginInput carries a raw remember-me token from the client.
type RememberedLoginInput struct {
	Token string
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session material after a successful login.
// RememberToken is empty unless the caller asked to be remembered.
type LoginOutput struct {
	AccessToken   string
	RefreshToken  string
	RememberToken string
	User          *entity.User
}

// RefreshOutput returns the new token pair after a successful refresh.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (*LoginOutput, error)
	RememberedLogin(ctx context.Context, input RememberedLoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, rememberToken string) error
}
