package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	mockRepo "pushgate/internal/mocks/repository"
	mockService "pushgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registryFixture struct {
	registry *Registry
	appRepo  *mockRepo.MockAppRepository
	factory  *mockService.MockPushBackendFactory
}

func newRegistryFixture(t *testing.T) *registryFixture {
	appRepo := mockRepo.NewMockAppRepository(t)
	factory := mockService.NewMockPushBackendFactory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &registryFixture{
		registry: newRegistry(appRepo, factory, logger),
		appRepo:  appRepo,
		factory:  factory,
	}
}

func enabledApp() *entity.App {
	return &entity.App{
		ID:             uuid.New(),
		Name:           "shop",
		PushCredential: []byte(`{"type":"service_account"}`),
		Enabled:        true,
	}
}

func TestRegistry_Get_BuildsOnceAndReuses(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	app := enabledApp()
	backend := mockService.NewMockPushBackend(t)

	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil).Times(2)
	f.factory.EXPECT().New(mock.Anything, app.ID.String(), []byte(app.PushCredential)).Return(backend, nil).Once()

	first, err := f.registry.Get(ctx, app.ID)
	require.NoError(t, err)
	second, err := f.registry.Get(ctx, app.ID)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, f.registry.Len())
}

func TestRegistry_Get_ConcurrentFirstAccessRegistersOneHandle(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	app := enabledApp()
	backend := mockService.NewMockPushBackend(t)

	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	f.factory.EXPECT().New(mock.Anything, app.ID.String(), mock.Anything).Return(backend, nil).Once()

	const callers = 32
	results := make([]service.PushBackend, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.registry.Get(ctx, app.ID)
			assert.NoError(t, err)
			results[i] = got
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Same(t, backend, got)
	}
	assert.Equal(t, 1, f.registry.Len())
}

func TestRegistry_Store_ClosesRedundantHandle(t *testing.T) {
	f := newRegistryFixture(t)
	appID := uuid.New()
	winner := mockService.NewMockPushBackend(t)
	loser := mockService.NewMockPushBackend(t)

	loser.EXPECT().Close().Return(nil).Once()

	stored, ok := f.registry.store(appID, winner, 0)
	require.True(t, ok)
	assert.Same(t, winner, stored)

	stored, ok = f.registry.store(appID, loser, 0)
	require.True(t, ok)
	assert.Same(t, winner, stored)
	assert.Equal(t, 1, f.registry.Len())
}

func TestRegistry_Store_DropsHandleBuiltBeforeEvict(t *testing.T) {
	f := newRegistryFixture(t)
	appID := uuid.New()
	backend := mockService.NewMockPushBackend(t)

	epoch := f.registry.epoch(appID)
	f.registry.Evict(appID)
	backend.EXPECT().Close().Return(nil).Once()

	stored, ok := f.registry.store(appID, backend, epoch)

	assert.False(t, ok)
	assert.Nil(t, stored)
	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_Get_DeleteDuringBuildLeavesNothingCached(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	app := enabledApp()
	backend := mockService.NewMockPushBackend(t)

	building := make(chan struct{})
	release := make(chan struct{})

	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil).Once()
	f.factory.EXPECT().New(mock.Anything, app.ID.String(), mock.Anything).
		RunAndReturn(func(context.Context, string, []byte) (service.PushBackend, error) {
			close(building)
			<-release

			return backend, nil
		}).Once()
	backend.EXPECT().Close().Return(nil).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := f.registry.Get(ctx, app.ID)
		errCh <- err
	}()

	<-building
	f.registry.Evict(app.ID)
	close(release)

	require.ErrorIs(t, <-errCh, domainerrors.ErrAppNotFound)
	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_Get_MissingApp(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	appID := uuid.New()

	f.appRepo.EXPECT().FindAppByID(ctx, appID).Return(nil, repository.ErrAppNotFound)

	_, err := f.registry.Get(ctx, appID)

	require.ErrorIs(t, err, domainerrors.ErrAppNotFound)
}

func TestRegistry_Get_DisabledAppFailsAndEvictsCachedHandle(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	app := enabledApp()
	backend := mockService.NewMockPushBackend(t)

	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil).Once()
	f.factory.EXPECT().New(mock.Anything, mock.Anything, mock.Anything).Return(backend, nil).Once()

	_, err := f.registry.Get(ctx, app.ID)
	require.NoError(t, err)

	disabled := *app
	disabled.Enabled = false
	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(&disabled, nil).Once()
	backend.EXPECT().Close().Return(nil).Once()

	_, err = f.registry.Get(ctx, app.ID)

	require.ErrorIs(t, err, domainerrors.ErrAppNotFound)
	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_Get_InvalidCredential(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	app := enabledApp()

	f.appRepo.EXPECT().FindAppByID(ctx, app.ID).Return(app, nil)
	f.factory.EXPECT().New(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(ErrInvalidCredential, "private_key is missing"))

	_, err := f.registry.Get(ctx, app.ID)

	require.ErrorIs(t, err, domainerrors.ErrInvalidPushCredential)
	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_Get_RepositoryFailure(t *testing.T) {
	f := newRegistryFixture(t)
	ctx := context.Background()
	appID := uuid.New()

	f.appRepo.EXPECT().FindAppByID(ctx, appID).Return(nil, errors.New("connection reset"))

	_, err := f.registry.Get(ctx, appID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAppNotFound)
}

func TestRegistry_Validate(t *testing.T) {
	ctx := context.Background()
	credential := []byte(`{"type":"service_account"}`)

	t.Run("usable credential is built and closed", func(t *testing.T) {
		f := newRegistryFixture(t)
		backend := mockService.NewMockPushBackend(t)

		f.factory.EXPECT().New(ctx, mock.AnythingOfType("string"), credential).Return(backend, nil)
		backend.EXPECT().Close().Return(nil).Once()

		require.NoError(t, f.registry.Validate(ctx, credential))
		assert.Equal(t, 0, f.registry.Len())
	})

	t.Run("unusable credential", func(t *testing.T) {
		f := newRegistryFixture(t)

		f.factory.EXPECT().New(ctx, mock.Anything, credential).Return(nil, ErrInvalidCredential)

		require.ErrorIs(t, f.registry.Validate(ctx, credential), domainerrors.ErrInvalidPushCredential)
	})
}

func TestRegistry_Evict(t *testing.T) {
	f := newRegistryFixture(t)
	appID := uuid.New()
	backend := mockService.NewMockPushBackend(t)
	f.registry.store(appID, backend, 0)

	backend.EXPECT().Close().Return(nil).Once()

	f.registry.Evict(appID)
	f.registry.Evict(appID)

	assert.Equal(t, 0, f.registry.Len())
}

func TestRegistry_CloseAll(t *testing.T) {
	f := newRegistryFixture(t)
	first := mockService.NewMockPushBackend(t)
	second := mockService.NewMockPushBackend(t)
	f.registry.store(uuid.New(), first, 0)
	f.registry.store(uuid.New(), second, 0)

	first.EXPECT().Close().Return(nil).Once()
	second.EXPECT().Close().Return(errors.New("already closed")).Once()

	f.registry.closeAll()

	assert.Equal(t, 0, f.registry.Len())
}
