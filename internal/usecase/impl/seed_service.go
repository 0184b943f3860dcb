// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "stylus/internal/delivery/context"
	"stylus/internal/domain/entity"
	"stylus/internal/domain/repository"
	"stylus/internal/domain/service"
	"stylus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Baseline account created on first startup. The password is a bootstrap
// credential; operators are expected to rotate it.
const (
	seedAdminLoginName = "maxuli"
	seedAdminEmail     = "maxuli@example.com"
	seedAdminPassword  = "asdfghj1"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger

	mu   sync.Mutex
	done bool
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *seedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureBaseline guarantees the baseline permission and administrator exist.
//
// The work runs as four sequential transactions: ensure the permission,
// check for the admin identity, create the admin account, and attach the
// permission. Finding the admin identity in step two returns early without
// re-checking the permission grant, so a previously interrupted seed is not
// repaired on later runs. The lock keeps concurrent callers from interleaving
// the transaction sequence.
func (srv *seedService) EnsureBaseline(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.done {
		return nil
	}

	if err := srv.ensurePermission(ctx); err != nil {
		return err
	}

	exists, err := srv.adminIdentityExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		srv.log(ctx).Info("Admin account already exists", slog.String("login", seedAdminLoginName))
		srv.done = true

		return nil
	}

	user, err := srv.createAdminAccount(ctx)
	if err != nil {
		return err
	}

	if err := srv.attachBaselinePermission(ctx, user); err != nil {
		return err
	}

	srv.log(ctx).Info("Seeded baseline data",
		slog.String("permission", entity.PermissionStylus),
		slog.String("login", seedAdminLoginName))
	srv.done = true

	return nil
}

// ensurePermission inserts the baseline permission if it is absent.
func (srv *seedService) ensurePermission(ctx context.Context) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		permRepo := repoFactory.PermissionRepo()

		_, err := permRepo.FindByName(ctx, entity.PermissionStylus)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrPermissionNotFound) {
			return errors.Wrap(err, "failed to look up baseline permission")
		}

		perm := &entity.Permission{Name: entity.PermissionStylus}

		return errors.Wrap(permRepo.Create(ctx, perm), "failed to create baseline permission")
	})
}

// adminIdentityExists runs the read-only check for the admin login identity.
func (srv *seedService) adminIdentityExists(ctx context.Context) (bool, error) {
	var exists bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.AuthRepo().FindIdentity(ctx, entity.ProviderTypeLoginName, seedAdminLoginName)
		if err == nil {
			exists = true

			return nil
		}
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to look up admin identity")
	})

	return exists, err
}

// createAdminAccount registers the admin identity, creates the domain user,
// and links the two, all in one transaction.
func (srv *seedService) createAdminAccount(ctx context.Context) (*entity.User, error) {
	passwordHash, err := srv.hasher.Hash(seedAdminPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		userRepo := repoFactory.UserRepo()

		info := &entity.AuthInfo{
			Email:        seedAdminEmail,
			PasswordHash: passwordHash,
		}
		if err := authRepo.CreateAuthInfo(ctx, info); err != nil {
			return errors.Wrap(err, "failed to create admin auth info")
		}

		identity := &entity.Identity{
			AuthInfoID: info.ID,
			Provider:   entity.ProviderTypeLoginName,
			Identity:   seedAdminLoginName,
		}
		if err := authRepo.CreateIdentity(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to create admin identity")
		}

		user = &entity.User{Name: seedAdminLoginName}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create admin user")
		}

		info.UserID = &user.ID

		return errors.Wrap(authRepo.UpdateAuthInfo(ctx, info), "failed to link admin user")
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// attachBaselinePermission re-fetches the permission in a fresh transaction
// and inserts it into the admin user's permission set.
func (srv *seedService) attachBaselinePermission(ctx context.Context, user *entity.User) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		perm, err := repoFactory.PermissionRepo().FindByName(ctx, entity.PermissionStylus)
		if err != nil {
			return errors.Wrap(err, "failed to re-fetch baseline permission")
		}

		return errors.Wrap(
			repoFactory.UserRepo().GrantPermission(ctx, user.ID, perm.ID),
			"failed to grant baseline permission")
	})
}
