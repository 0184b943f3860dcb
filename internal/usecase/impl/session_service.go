package impl

import (
	"context"
	"log/slog"

	deliverycontext "stylus/internal/delivery/context"
	"stylus/internal/domain/entity"
	"stylus/internal/domain/repository"
	"stylus/internal/domain/service"
	"stylus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
	providers    []service.OAuthAuthService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	GoogleAuth   service.OAuthAuthService `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. The shared
// services are handed over at construction and only read afterwards.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	var providers []service.OAuthAuthService
	if params.GoogleAuth != nil {
		providers = append(providers, params.GoogleAuth)
	}

	return &sessionService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		providers:    providers,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentUser returns the user linked to the given authentication record.
// No active login and an unlinked AuthInfo both yield nil without an error.
func (srv *sessionService) CurrentUser(ctx context.Context, authInfoID *uuid.UUID) (*entity.User, error) {
	if authInfoID == nil {
		return nil, nil
	}

	info, err := srv.authRepo.FindAuthInfoByID(ctx, *authInfoID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthInfoNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find auth info")
	}

	if info.UserID == nil {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, *info.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find linked user")
	}

	return user, nil
}

// ResolveUser finds or creates the AuthInfo for the identity pair and lazily
// creates and links a user when none is attached yet.
func (srv *sessionService) ResolveUser(ctx context.Context, provider entity.ProviderType, identity, email string) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		info, err := srv.findOrCreateAuthInfo(ctx, authRepo, provider, identity, email)
		if err != nil {
			return err
		}

		if info.UserID != nil {
			user, err = userRepo.FindByID(ctx, *info.UserID)

			return errors.Wrap(err, "failed to find linked user")
		}

		srv.log(ctx).Info("Creating user for identity",
			slog.String("provider", provider.String()), slog.String("identity", identity))

		user = &entity.User{Name: identity}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		info.UserID = &user.ID

		return errors.Wrap(authRepo.UpdateAuthInfo(ctx, info), "failed to link user")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *sessionService) findOrCreateAuthInfo(ctx context.Context, authRepo repository.AuthRepository, provider entity.ProviderType, identity, email string) (*entity.AuthInfo, error) {
	identityRecord, err := authRepo.FindIdentity(ctx, provider, identity)
	if err == nil {
		info, err := authRepo.FindAuthInfoByID(ctx, identityRecord.AuthInfoID)

		return info, errors.Wrap(err, "failed to find auth info for identity")
	}
	if !errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	info := &entity.AuthInfo{Email: email}
	if err := authRepo.CreateAuthInfo(ctx, info); err != nil {
		return nil, errors.Wrap(err, "failed to create auth info")
	}

	record := &entity.Identity{
		AuthInfoID: info.ID,
		Provider:   provider,
		Identity:   identity,
	}
	if err := authRepo.CreateIdentity(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	return info, nil
}

// HasPermission reports whether the user holds the named permission.
func (srv *sessionService) HasPermission(user *entity.User, name string) bool {
	if user == nil {
		return false
	}

	return user.HasPermission(name)
}

// Tokens returns the shared token service.
func (srv *sessionService) Tokens() service.TokenService {
	return srv.tokenService
}

// PasswordHasher returns the shared password-hashing service.
func (srv *sessionService) PasswordHasher() service.PasswordHasher {
	return srv.hasher
}

// OAuthProviders returns the configured external OAuth services.
func (srv *sessionService) OAuthProviders() []service.OAuthAuthService {
	return srv.providers
}
