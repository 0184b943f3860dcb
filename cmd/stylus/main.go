package main

import (
	"context"
	"log/slog"
	"os"

	"stylus/config"
	"stylus/internal/delivery"
	"stylus/internal/delivery/http"
	"stylus/internal/delivery/http/middleware"
	"stylus/internal/delivery/http/router/handler"
	"stylus/internal/infra/auth"
	"stylus/internal/infra/auth/google"
	logs "stylus/internal/infra/log"
	"stylus/internal/infra/persistence/store"
	"stylus/internal/usecase"
	"stylus/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			prepareStore,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewUserRepository,
			store.NewPermissionRepository,
			store.NewAuthRepository,
			store.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSeedService,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewShellHandler,
			handler.NewStylusHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// prepareStore ensures the schema exists and the baseline data is seeded
// before the server starts accepting requests.
func prepareStore(ctx context.Context, db *gorm.DB, logger *slog.Logger, seeder usecase.SeedUsecase) error {
	if _, err := store.Migrate(db, logger); err != nil {
		return err
	}

	return seeder.EnsureBaseline(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
