package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"pushgate/config"
	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxClockSkew = 5 * time.Minute

// TenantAuthServiceParams holds dependencies for tenantAuthService, injected by Fx.
type TenantAuthServiceParams struct {
	fx.In

	AppRepo repository.AppRepository
	Signer  service.RequestSigner
	Config  *config.Config
	Logger  *slog.Logger
}

// tenantAuthService implements the TenantAuthUsecase interface.
type tenantAuthService struct {
	appRepo      repository.AppRepository
	signer       service.RequestSigner
	maxClockSkew time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NewTenantAuthService is the constructor for tenantAuthService.
func NewTenantAuthService(params TenantAuthServiceParams) usecase.TenantAuthUsecase {
	maxClockSkew := defaultMaxClockSkew
	if params.Config != nil && params.Config.Signature != nil && params.Config.Signature.MaxClockSkew > 0 {
		maxClockSkew = params.Config.Signature.MaxClockSkew
	}

	return &tenantAuthService{
		appRepo:      params.AppRepo,
		signer:       params.Signer,
		maxClockSkew: maxClockSkew,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *tenantAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyRequest checks, in order, header presence, timestamp freshness, app lookup and the
// HMAC-SHA384 signature over RequestURI + Timestamp + Body.
func (srv *tenantAuthService) VerifyRequest(ctx context.Context, req *usecase.SignedRequest) (*entity.App, error) {
	app, reason, err := srv.verify(ctx, req)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		srv.log(ctx).Warn("Signed request rejected",
			slog.String("api_key", req.APIKey),
			slog.String("reason", reason),
		)

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "signature verification failed")
	}

	return app, nil
}

// verify returns a non-empty reason for every rejection and an error only for infrastructure failures.
func (srv *tenantAuthService) verify(ctx context.Context, req *usecase.SignedRequest) (*entity.App, string, error) {
	if req.Timestamp == "" || req.APIKey == "" || req.Signature == "" {
		return nil, "missing signature headers", nil
	}

	millis, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil {
		return nil, "malformed timestamp", nil
	}

	skew := srv.now().Sub(time.UnixMilli(millis))
	if skew < 0 {
		skew = -skew
	}
	if skew > srv.maxClockSkew {
		return nil, "stale timestamp", nil
	}

	app, err := srv.appRepo.FindAppByAPIKey(ctx, req.APIKey)
	if err != nil {
		if errors.Is(err, repository.ErrAppNotFound) {
			return nil, "unknown api key", nil
		}

		return nil, "", errors.Wrap(err, "failed to load app")
	}

	if !app.Enabled {
		return nil, "app disabled", nil
	}

	canonical := req.RequestURI + req.Timestamp + string(req.Body)
	if !srv.signer.Verify(app.APISecret, canonical, req.Signature) {
		return nil, "signature mismatch", nil
	}

	return app, "", nil
}
