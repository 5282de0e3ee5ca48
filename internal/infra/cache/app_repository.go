package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	"pushgate/internal/domain/repository"
	"pushgate/internal/errors"

	"github.com/google/uuid"
)

const (
	appByIDKeyPrefix  = "pushgate:app:id:"
	appByKeyKeyPrefix = "pushgate:app:key:"

	generationSuffix = ":gen"
	entrySuffix      = ":v"
)

// cachedApp is the cache representation of an app. Unlike entity.App it keeps the secret fields,
// because the signature guard and the push-backend registry both read through this cache.
type cachedApp struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	APIKey         string          `json:"apiKey"`
	APISecret      string          `json:"apiSecret"`
	PushCredential json.RawMessage `json:"pushCredential"`
	Enabled        bool            `json:"enabled"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// cachedAppRepository decorates an AppRepository with read-aside caching of single-app
// lookups.
//
// Each lookup key has a generation counter and entries are stored under the generation read
// before the load. Writes commit to the inner repository and then bump both generations, so an
// entry written by a reader that loaded before the commit lands under a retired generation and
// is never served.
type cachedAppRepository struct {
	inner  repository.AppRepository
	client Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedAppRepository wraps inner with a cache.
func NewCachedAppRepository(inner repository.AppRepository, client Client, ttl time.Duration, logger *slog.Logger) repository.AppRepository {
	return &cachedAppRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *cachedAppRepository) CreateApp(ctx context.Context, app *entity.App) error {
	return r.inner.CreateApp(ctx, app)
}

func (r *cachedAppRepository) FindAppByID(ctx context.Context, id uuid.UUID) (*entity.App, error) {
	return r.readAside(ctx, idKey(id), func() (*entity.App, error) {
		return r.inner.FindAppByID(ctx, id)
	})
}

func (r *cachedAppRepository) FindAppByAPIKey(ctx context.Context, apiKey string) (*entity.App, error) {
	return r.readAside(ctx, apiKeyKey(apiKey), func() (*entity.App, error) {
		return r.inner.FindAppByAPIKey(ctx, apiKey)
	})
}

func (r *cachedAppRepository) ListApps(ctx context.Context) ([]*entity.App, error) {
	return r.inner.ListApps(ctx)
}

func (r *cachedAppRepository) UpdateApp(ctx context.Context, id uuid.UUID, update *entity.AppUpdate) (*entity.App, error) {
	app, err := r.inner.UpdateApp(ctx, id, update)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, app)

	return app, nil
}

func (r *cachedAppRepository) DeleteApp(ctx context.Context, id uuid.UUID) error {
	app, err := r.inner.FindAppByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.inner.DeleteApp(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, app)

	return nil
}

func (r *cachedAppRepository) readAside(ctx context.Context, base string, load func() (*entity.App, error)) (*entity.App, error) {
	gen, err := r.generation(ctx, base)
	if err != nil {
		r.log(ctx).Warn("App cache generation read failed", slog.String("key", base), slog.Any("error", err))

		return load()
	}
	key := entryKey(base, gen)

	var hit cachedApp
	err = r.client.Get(ctx, key, &hit)
	if err == nil {
		return hit.toEntity(), nil
	}
	if !isMiss(err) {
		r.log(ctx).Warn("App cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	app, err := load()
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, key, fromEntity(app), r.ttl); err != nil {
		r.log(ctx).Warn("App cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return app, nil
}

func (r *cachedAppRepository) generation(ctx context.Context, base string) (int64, error) {
	var gen int64
	err := r.client.Get(ctx, base+generationSuffix, &gen)
	if isMiss(err) {
		return 0, nil
	}

	return gen, err
}

// invalidate retires the current generation of both lookup keys and drops their entries.
func (r *cachedAppRepository) invalidate(ctx context.Context, app *entity.App) {
	var retired []string
	for _, base := range []string{idKey(app.ID), apiKeyKey(app.APIKey)} {
		gen, err := r.client.Incr(ctx, base+generationSuffix)
		if err != nil {
			r.log(ctx).Error("App cache invalidation failed",
				slog.String("app_id", app.ID.String()),
				slog.String("key", base),
				slog.Any("error", err),
			)

			continue
		}
		retired = append(retired, entryKey(base, gen-1))
	}

	if len(retired) == 0 {
		return
	}
	if err := r.client.Del(ctx, retired...); err != nil {
		r.log(ctx).Warn("App cache entry cleanup failed",
			slog.String("app_id", app.ID.String()),
			slog.Any("error", err),
		)
	}
}

func idKey(id uuid.UUID) string {
	return appByIDKeyPrefix + id.String()
}

func apiKeyKey(apiKey string) string {
	return appByKeyKeyPrefix + apiKey
}

func entryKey(base string, gen int64) string {
	return base + entrySuffix + strconv.FormatInt(gen, 10)
}

func (r *cachedAppRepository) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func isMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

func fromEntity(app *entity.App) *cachedApp {
	return &cachedApp{
		ID:             app.ID,
		Name:           app.Name,
		APIKey:         app.APIKey,
		APISecret:      app.APISecret,
		PushCredential: app.PushCredential,
		Enabled:        app.Enabled,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

func (c *cachedApp) toEntity() *entity.App {
	return &entity.App{
		ID:             c.ID,
		Name:           c.Name,
		APIKey:         c.APIKey,
		APISecret:      c.APISecret,
		PushCredential: c.PushCredential,
		Enabled:        c.Enabled,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
