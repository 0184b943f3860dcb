package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "stylus/internal/delivery/context"
	"stylus/internal/domain/entity"
	domainerrors "stylus/internal/domain/errors"
	"stylus/internal/domain/repository"
	"stylus/internal/domain/service"
	"stylus/internal/usecase"
	"stylus/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	googleAuth   service.OAuthAuthService
	sessions     usecase.SessionUsecase
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	GoogleAuth   service.OAuthAuthService `optional:"true"`
	Sessions     usecase.SessionUsecase
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		googleAuth:   params.GoogleAuth,
		sessions:     params.Sessions,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new password-based account with its own login identity.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("login", input.LoginName))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		count, err := authRepo.CountIdentities(ctx, entity.ProviderTypeLoginName, input.LoginName)
		if err != nil {
			return errors.Wrap(err, "failed to check login name")
		}
		if count > 0 {
			return domainerrors.ErrUserAlreadyExists
		}

		info := &entity.AuthInfo{
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := authRepo.CreateAuthInfo(ctx, info); err != nil {
			return errors.Wrap(err, "failed to create auth info")
		}

		identity := &entity.Identity{
			AuthInfoID: info.ID,
			Provider:   entity.ProviderTypeLoginName,
			Identity:   input.LoginName,
		}
		if err := authRepo.CreateIdentity(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to create identity")
		}

		name := input.Name
		if name == "" {
			name = input.LoginName
		}

		user = &entity.User{Name: name}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		info.UserID = &user.ID

		return errors.Wrap(authRepo.UpdateAuthInfo(ctx, info), "failed to link user")
	})
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// Login authenticates a local account and issues session material.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identity, err := srv.authRepo.FindIdentity(ctx, entity.ProviderTypeLoginName, input.LoginName)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	info, err := srv.authRepo.FindAuthInfoByID(ctx, identity.AuthInfoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find auth info")
	}

	if !srv.hasher.Check(input.Password, info.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.sessions.ResolveUser(ctx, entity.ProviderTypeLoginName, input.LoginName, info.Email)
	if err != nil {
		return nil, err
	}

	output, err := srv.issueSession(ctx, info, user, input.RememberMe)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.String("login", input.LoginName))

	return output, nil
}

// GoogleSignIn verifies a Google ID token and resolves the account behind it,
// creating the user on first sign-in.
func (srv *userService) GoogleSignIn(ctx context.Context, input usecase.GoogleSignInInput) (*usecase.LoginOutput, error) {
	if srv.googleAuth == nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in is not configured")
	}

	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("failed to verify ID token")
	}

	user, err := srv.sessions.ResolveUser(ctx, srv.googleAuth.Provider(), oauthUser.ID, oauthUser.Email)
	if err != nil {
		return nil, err
	}

	identity, err := srv.authRepo.FindIdentity(ctx, srv.googleAuth.Provider(), oauthUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find resolved identity")
	}

	info, err := srv.authRepo.FindAuthInfoByID(ctx, identity.AuthInfoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find auth info")
	}

	srv.log(ctx).Info("Google sign-in succeeded", slog.String("email", oauthUser.Email))

	return srv.issueSession(ctx, info, user, false)
}

// RememberedLogin restores a session from a persisted remember-me token.
// The presented token is single-use: a successful login deletes it and
// returns a freshly issued replacement.
func (srv *userService) RememberedLogin(ctx context.Context, input usecase.RememberedLoginInput) (*usecase.LoginOutput, error) {
	// Sweep aged tokens while we are here; a failed sweep never blocks login.
	if err := srv.authRepo.DeleteExpiredTokens(ctx); err != nil {
		srv.log(ctx).Warn("Failed to sweep expired tokens", slog.Any("error", err))
	}

	hash := util.HashToken(input.Token)

	token, err := srv.authRepo.FindTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find credential token")
	}

	if time.Now().After(token.ExpiresAt) {
		// Expired tokens are removed on sight.
		if delErr := srv.authRepo.DeleteTokenByHash(ctx, hash); delErr != nil {
			srv.log(ctx).Warn("Failed to delete expired token", slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	info, err := srv.authRepo.FindAuthInfoByID(ctx, token.AuthInfoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find auth info")
	}

	user, err := srv.sessions.CurrentUser(ctx, &info.ID)
	if err != nil {
		return nil, err
	}

	if err := srv.authRepo.DeleteTokenByHash(ctx, hash); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return nil, errors.Wrap(err, "failed to rotate credential token")
	}

	return srv.issueSession(ctx, info, user, true)
}

// Refresh rotates an access/refresh token pair.
func (srv *userService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to validate refresh token")
	}

	user, err := srv.sessions.CurrentUser(ctx, &claims.AuthInfoID)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(claims.AuthInfoID, permissionNames(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout discards the remember-me token, if one was presented.
func (srv *userService) Logout(ctx context.Context, rememberToken string) error {
	if rememberToken == "" {
		return nil
	}

	err := srv.authRepo.DeleteTokenByHash(ctx, util.HashToken(rememberToken))
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return errors.Wrap(err, "failed to delete credential token")
	}

	return nil
}

// issueSession generates the token pair and, when asked, persists a
// remember-me token alongside it.
func (srv *userService) issueSession(ctx context.Context, info *entity.AuthInfo, user *entity.User, remember bool) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(info.ID, permissionNames(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	output := &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}

	if remember {
		raw, err := util.GenerateToken()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate remember token")
		}

		token := &entity.CredentialToken{
			AuthInfoID: info.ID,
			TokenHash:  util.HashToken(raw),
			ExpiresAt:  time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}
		if err := srv.authRepo.CreateToken(ctx, token); err != nil {
			return nil, errors.Wrap(err, "failed to persist remember token")
		}

		output.RememberToken = raw
	}

	return output, nil
}

func permissionNames(user *entity.User) []string {
	if user == nil {
		return nil
	}

	names := make([]string, 0, len(user.Permissions))
	for _, p := range user.Permissions {
		names = append(names, p.Name)
	}

	return names
}
