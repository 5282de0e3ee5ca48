package notification

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// Registry caches one live push backend per enabled app.
//
// The app record is re-read on every Get so a disabled app fails immediately even when its
// backend is already cached. Concurrent first access for the same app is collapsed through
// singleflight, and the map insert is double-checked so at most one handle is ever registered.
// Every Evict bumps the app's epoch; a build that started under an older epoch is closed instead
// of cached, so a handle never outlives the disable or delete that raced with it.
type Registry struct {
	appRepo repository.AppRepository
	factory service.PushBackendFactory
	logger  *slog.Logger

	mu       sync.RWMutex
	backends map[uuid.UUID]service.PushBackend
	epochs   map[uuid.UUID]uint64
	group    singleflight.Group
}

var errEvictedDuringBuild = errors.New("app was evicted while its push backend was being built")

// RegistryParams holds the dependencies for the registry provider.
type RegistryParams struct {
	fx.In
	fx.Lifecycle

	AppRepo repository.AppRepository
	Factory service.PushBackendFactory
	Logger  *slog.Logger
}

// NewRegistry provides the registry and closes every cached backend on shutdown.
func NewRegistry(params RegistryParams) service.PushBackendRegistry {
	registry := newRegistry(params.AppRepo, params.Factory, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.closeAll()

			return nil
		},
	})

	return registry
}

func newRegistry(appRepo repository.AppRepository, factory service.PushBackendFactory, logger *slog.Logger) *Registry {
	return &Registry{
		appRepo:  appRepo,
		factory:  factory,
		logger:   logger,
		backends: make(map[uuid.UUID]service.PushBackend),
		epochs:   make(map[uuid.UUID]uint64),
	}
}

func (r *Registry) Get(ctx context.Context, appID uuid.UUID) (service.PushBackend, error) {
	epoch := r.epoch(appID)

	app, err := r.appRepo.FindAppByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			r.Evict(appID)

			return nil, domainerrors.ErrAppNotFound.WrapMessage("app not found")
		}

		return nil, errors.Wrap(err, "failed to load app")
	}

	if !app.Enabled {
		r.Evict(appID)

		return nil, domainerrors.ErrAppNotFound.WrapMessage("app is disabled")
	}

	if backend, ok := r.lookup(appID); ok {
		return backend, nil
	}

	result, err, _ := r.group.Do(appID.String(), func() (any, error) {
		if backend, ok := r.lookup(appID); ok {
			return backend, nil
		}

		// The build is shared by every waiter on this key.
		backend, err := r.factory.New(context.WithoutCancel(ctx), app.ID.String(), app.PushCredential)
		if err != nil {
			return nil, err
		}

		stored, ok := r.store(appID, backend, epoch)
		if !ok {
			return nil, errEvictedDuringBuild
		}

		return stored, nil
	})
	if err != nil {
		if errors.Is(err, errEvictedDuringBuild) {
			return nil, domainerrors.ErrAppNotFound.WrapMessage("app was disabled or deleted")
		}
		if errors.Is(err, ErrInvalidCredential) {
			return nil, domainerrors.ErrInvalidPushCredential.WrapMessage(err.Error())
		}

		return nil, errors.Wrap(err, "failed to create push backend")
	}

	return result.(service.PushBackend), nil //nolint:forcetypeassert // only PushBackend values are returned above
}

func (r *Registry) Validate(ctx context.Context, credential []byte) error {
	backend, err := r.factory.New(ctx, "validation-"+uuid.NewString(), credential)
	if err != nil {
		if errors.Is(err, ErrInvalidCredential) {
			return domainerrors.ErrInvalidPushCredential.WrapMessage(err.Error())
		}

		return errors.Wrap(err, "failed to validate push credential")
	}

	if err := backend.Close(); err != nil {
		r.logger.Warn("Failed to close validation backend", slog.Any("error", err))
	}

	return nil
}

func (r *Registry) Evict(appID uuid.UUID) {
	r.mu.Lock()
	backend, ok := r.backends[appID]
	delete(r.backends, appID)
	r.epochs[appID]++
	r.mu.Unlock()

	if !ok {
		return
	}

	if err := backend.Close(); err != nil {
		r.logger.Warn("Failed to close evicted backend",
			slog.String("app_id", appID.String()),
			slog.Any("error", err),
		)
	}

	r.logger.Info("Push backend evicted", slog.String("app_id", appID.String()))
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.backends)
}

func (r *Registry) lookup(appID uuid.UUID) (service.PushBackend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[appID]

	return backend, ok
}

func (r *Registry) epoch(appID uuid.UUID) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.epochs[appID]
}

// store registers a backend built under epoch. When another handle won the race the existing
// one is returned; when the app was evicted since epoch nothing is cached and ok is false. In
// both cases backend itself is closed.
func (r *Registry) store(appID uuid.UUID, backend service.PushBackend, epoch uint64) (service.PushBackend, bool) {
	r.mu.Lock()
	stale := r.epochs[appID] != epoch
	existing, exists := r.backends[appID]
	if !stale && !exists {
		r.backends[appID] = backend
	}
	r.mu.Unlock()

	switch {
	case stale:
		r.closeUnused(appID, backend, "Failed to close stale backend")

		return nil, false
	case exists:
		r.closeUnused(appID, backend, "Failed to close redundant backend")

		return existing, true
	}

	r.logger.Info("Push backend cached", slog.String("app_id", appID.String()))

	return backend, true
}

func (r *Registry) closeUnused(appID uuid.UUID, backend service.PushBackend, msg string) {
	if err := backend.Close(); err != nil {
		r.logger.Warn(msg, slog.String("app_id", appID.String()), slog.Any("error", err))
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	backends := r.backends
	r.backends = make(map[uuid.UUID]service.PushBackend)
	r.mu.Unlock()

	for appID, backend := range backends {
		if err := backend.Close(); err != nil {
			r.logger.Warn("Failed to close backend on shutdown",
				slog.String("app_id", appID.String()),
				slog.Any("error", err),
			)
		}
	}
}
