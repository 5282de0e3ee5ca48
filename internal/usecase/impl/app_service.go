package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	apiKeyPrefix       = "nk_"
	apiSecretByteCount = 32
	maxAPIKeyAttempts  = 3
)

// AppServiceParams holds dependencies for appService, injected by Fx.
type AppServiceParams struct {
	fx.In

	AppRepo  repository.AppRepository
	Registry service.PushBackendRegistry
	Logger   *slog.Logger
}

// appService implements the AppUsecase interface.
type appService struct {
	appRepo  repository.AppRepository
	registry service.PushBackendRegistry
	logger   *slog.Logger
}

// NewAppService is the constructor for appService.
func NewAppService(params AppServiceParams) usecase.AppUsecase {
	return &appService{
		appRepo:  params.AppRepo,
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *appService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateApp validates the push credential before anything is stored, then persists the app
// with a generated API key and secret.
func (srv *appService) CreateApp(ctx context.Context, input *usecase.CreateAppInput) (*usecase.CreateAppOutput, error) {
	if err := srv.registry.Validate(ctx, input.FirebaseConfig); err != nil {
		srv.log(ctx).Warn("Push credential rejected", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	secret, err := generateAPISecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate api secret")
	}

	app := &entity.App{
		Name:           input.Name,
		APISecret:      secret,
		PushCredential: input.FirebaseConfig,
		Enabled:        true,
	}

	// Regenerate the key on a unique index collision.
	for attempt := 1; ; attempt++ {
		app.APIKey = generateAPIKey()

		err = srv.appRepo.CreateApp(ctx, app)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateAPIKey) || attempt == maxAPIKeyAttempts {
			return nil, errors.Wrap(err, "failed to create app")
		}
	}

	srv.log(ctx).Info("App created", slog.String("app_id", app.ID.String()), slog.String("name", app.Name))

	return &usecase.CreateAppOutput{
		App:       app,
		APISecret: secret,
	}, nil
}

func (srv *appService) ListApps(ctx context.Context) ([]*entity.App, error) {
	apps, err := srv.appRepo.ListApps(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list apps")
	}

	return apps, nil
}

func (srv *appService) GetApp(ctx context.Context, appID uuid.UUID) (*entity.App, error) {
	app, err := srv.appRepo.FindAppByID(ctx, appID)
	if err != nil {
		return nil, mapAppError(err, "get app")
	}

	return app, nil
}

func (srv *appService) UpdateApp(ctx context.Context, appID uuid.UUID, input *usecase.UpdateAppInput) (*entity.App, error) {
	app, err := srv.appRepo.UpdateApp(ctx, appID, &entity.AppUpdate{
		Name:    input.Name,
		Enabled: input.Enabled,
	})
	if err != nil {
		return nil, mapAppError(err, "update app")
	}

	if !app.Enabled {
		srv.registry.Evict(appID)
	}

	srv.log(ctx).Info("App updated", slog.String("app_id", appID.String()), slog.Bool("enabled", app.Enabled))

	return app, nil
}

func (srv *appService) DeleteApp(ctx context.Context, appID uuid.UUID) error {
	if err := srv.appRepo.DeleteApp(ctx, appID); err != nil {
		return mapAppError(err, "delete app")
	}

	srv.registry.Evict(appID)

	srv.log(ctx).Info("App deleted", slog.String("app_id", appID.String()))

	return nil
}

func mapAppError(err error, action string) error {
	if errors.Is(err, repository.ErrAppNotFound) {
		return errors.Wrap(domainerrors.ErrAppNotFound, action)
	}

	return errors.Wrap(err, "failed to "+action)
}

func generateAPIKey() string {
	return apiKeyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func generateAPISecret() (string, error) {
	buf := make([]byte, apiSecretByteCount)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
