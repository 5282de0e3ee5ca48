package cache

import (
	"context"
	"log/slog"

	"pushgate/config"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// AppRepositoryParams holds the dependencies for the app repository provider.
type AppRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewAppRepository provides the app repository, wrapped in a Redis cache when one is configured.
func NewAppRepository(params AppRepositoryParams) (repository.AppRepository, error) {
	base := postgres.NewAppRepository(params.DB)

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Redis address not configured, app lookups are uncached")

		return base, nil
	}

	client, err := NewRedisClient(params.Ctx, redisCfg.Addr, redisCfg.Password, redisCfg.DB)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("App lookup cache enabled",
		slog.String("addr", redisCfg.Addr),
		slog.Duration("ttl", redisCfg.TTL),
	)

	return NewCachedAppRepository(base, client, redisCfg.TTL, params.Logger), nil
}
