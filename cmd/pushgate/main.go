package main

import (
	"context"
	"log/slog"
	"os"

	"pushgate/config"
	"pushgate/internal/delivery"
	"pushgate/internal/delivery/api"
	apimiddleware "pushgate/internal/delivery/api/middleware"
	"pushgate/internal/delivery/api/router/handler"
	"pushgate/internal/infra/auth"
	"pushgate/internal/infra/cache"
	logs "pushgate/internal/infra/log"
	"pushgate/internal/infra/metrics"
	"pushgate/internal/infra/notification"
	"pushgate/internal/infra/persistence/postgres"
	"pushgate/internal/infra/pubsub"
	"pushgate/internal/usecase/impl"

	"go.uber.org/fx"
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
			(*metrics.Metrics).RegisterBackendGauge,
			impl.SeedBootstrapAdministrator,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.NewAppRepository,
			postgres.NewAdministratorRepository,
			postgres.NewUserRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewHMACSigner,
			notification.NewFirebaseFactory,
			notification.NewRegistry,
			pubsub.NewEventPublisher,
			metrics.NewDeliveryMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdministratorService,
			impl.NewAppService,
			impl.NewUserService,
			impl.NewTenantAuthService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAdminAuthMiddleware,
			apimiddleware.NewSignatureMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdministratorHandler,
			handler.NewAppHandler,
			handler.NewUserHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
