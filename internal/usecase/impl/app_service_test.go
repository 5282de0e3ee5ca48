package impl

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	mockRepo "pushgate/internal/mocks/repository"
	mockService "pushgate/internal/mocks/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	apiKeyPattern    = regexp.MustCompile(`^nk_[0-9a-f]{32}$`)
	apiSecretPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

type appFixture struct {
	srv      usecase.AppUsecase
	repo     *mockRepo.MockAppRepository
	registry *mockService.MockPushBackendRegistry
}

func newAppFixture(t *testing.T) *appFixture {
	repo := mockRepo.NewMockAppRepository(t)
	registry := mockService.NewMockPushBackendRegistry(t)

	return &appFixture{
		srv: NewAppService(AppServiceParams{
			AppRepo:  repo,
			Registry: registry,
			Logger:   discardLogger(),
		}),
		repo:     repo,
		registry: registry,
	}
}

func TestAppService_CreateApp(t *testing.T) {
	ctx := context.Background()
	credential := json.RawMessage(`{"type":"service_account","project_id":"demo"}`)

	t.Run("generates key and secret", func(t *testing.T) {
		f := newAppFixture(t)

		f.registry.EXPECT().Validate(ctx, []byte(credential)).Return(nil)
		f.repo.EXPECT().CreateApp(ctx, mock.AnythingOfType("*entity.App")).
			RunAndReturn(func(_ context.Context, app *entity.App) error {
				app.ID = uuid.New()

				return nil
			})

		out, err := f.srv.CreateApp(ctx, &usecase.CreateAppInput{Name: "shop", FirebaseConfig: credential})
		require.NoError(t, err)
		assert.Regexp(t, apiKeyPattern, out.APIKey)
		assert.Regexp(t, apiSecretPattern, out.APISecret)
		assert.Equal(t, out.APISecret, out.App.APISecret)
		assert.True(t, out.Enabled)
		assert.JSONEq(t, string(credential), string(out.PushCredential))
	})

	t.Run("invalid credential persists nothing", func(t *testing.T) {
		f := newAppFixture(t)

		f.registry.EXPECT().Validate(ctx, mock.Anything).
			Return(domainerrors.ErrInvalidPushCredential.WrapMessage("missing private_key"))

		_, err := f.srv.CreateApp(ctx, &usecase.CreateAppInput{Name: "shop", FirebaseConfig: credential})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPushCredential)
		f.repo.AssertNotCalled(t, "CreateApp", mock.Anything, mock.Anything)
	})

	t.Run("key collision is retried with a fresh key", func(t *testing.T) {
		f := newAppFixture(t)
		var keys []string

		f.registry.EXPECT().Validate(ctx, mock.Anything).Return(nil)
		f.repo.EXPECT().CreateApp(ctx, mock.Anything).
			Run(func(_ context.Context, app *entity.App) { keys = append(keys, app.APIKey) }).
			Return(repository.ErrDuplicateAPIKey).Once()
		f.repo.EXPECT().CreateApp(ctx, mock.Anything).
			Run(func(_ context.Context, app *entity.App) { keys = append(keys, app.APIKey) }).
			Return(nil).Once()

		_, err := f.srv.CreateApp(ctx, &usecase.CreateAppInput{Name: "shop", FirebaseConfig: credential})
		require.NoError(t, err)
		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		f := newAppFixture(t)

		f.registry.EXPECT().Validate(ctx, mock.Anything).Return(nil)
		f.repo.EXPECT().CreateApp(ctx, mock.Anything).Return(repository.ErrDuplicateAPIKey).Times(maxAPIKeyAttempts)

		_, err := f.srv.CreateApp(ctx, &usecase.CreateAppInput{Name: "shop", FirebaseConfig: credential})
		assert.ErrorIs(t, err, repository.ErrDuplicateAPIKey)
	})
}

func TestAppService_UpdateApp(t *testing.T) {
	ctx := context.Background()
	disabled := false
	enabled := true

	t.Run("disabling evicts the cached backend", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().UpdateApp(ctx, id, &entity.AppUpdate{Enabled: &disabled}).
			Return(&entity.App{ID: id, Enabled: false}, nil)
		f.registry.EXPECT().Evict(id).Once()

		app, err := f.srv.UpdateApp(ctx, id, &usecase.UpdateAppInput{Enabled: &disabled})
		require.NoError(t, err)
		assert.False(t, app.Enabled)
	})

	t.Run("enabled app keeps its backend", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().UpdateApp(ctx, id, mock.Anything).Return(&entity.App{ID: id, Enabled: true}, nil)

		_, err := f.srv.UpdateApp(ctx, id, &usecase.UpdateAppInput{Enabled: &enabled})
		require.NoError(t, err)
	})

	t.Run("unknown app", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().UpdateApp(ctx, id, mock.Anything).Return(nil, repository.ErrAppNotFound)

		_, err := f.srv.UpdateApp(ctx, id, &usecase.UpdateAppInput{Enabled: &enabled})
		assert.ErrorIs(t, err, domainerrors.ErrAppNotFound)
	})
}

func TestAppService_DeleteApp(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts after delete", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().DeleteApp(ctx, id).Return(nil)
		f.registry.EXPECT().Evict(id).Once()

		require.NoError(t, f.srv.DeleteApp(ctx, id))
	})

	t.Run("unknown app", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().DeleteApp(ctx, id).Return(repository.ErrAppNotFound)

		err := f.srv.DeleteApp(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrAppNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newAppFixture(t)
		id := uuid.New()

		f.repo.EXPECT().DeleteApp(ctx, id).Return(errors.New("connection reset"))

		err := f.srv.DeleteApp(ctx, id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrAppNotFound)
	})
}
