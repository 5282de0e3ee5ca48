// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"pushgate/config"
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

const minPasswordLength = 6

// AdministratorServiceParams holds dependencies for administratorService, injected by Fx.
type AdministratorServiceParams struct {
	fx.In

	AdminRepo    repository.AdministratorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// administratorService implements the AdministratorUsecase interface.
type administratorService struct {
	adminRepo    repository.AdministratorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAdministratorService is the constructor for administratorService.
func NewAdministratorService(params AdministratorServiceParams) usecase.AdministratorUsecase {
	return &administratorService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *administratorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the password and issues a fresh token pair. The refresh token replaces any
// previously stored one, so older refresh tokens stop working.
func (srv *administratorService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting administrator login", slog.String("username", input.Username))

	admin, err := srv.adminRepo.FindAdministratorByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdministratorNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown username"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load administrator")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !admin.Enabled || !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Bool("enabled", admin.Enabled))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccess(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	if err := srv.adminRepo.UpdateRefreshToken(ctx, admin.ID, &refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Info("Administrator logged in", slog.String("admin_id", admin.ID.String()))

	return &usecase.LoginOutput{
		ID:           admin.ID,
		Username:     admin.Username,
		EmailAddress: admin.EmailAddress,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken generates only a new access token; the refresh token remains unchanged.
func (srv *administratorService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	admin, err := srv.resolveToken(ctx, input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	if admin.RefreshToken == nil || *admin.RefreshToken != input.RefreshToken {
		srv.log(ctx).Warn("Refresh rejected", slog.String("admin_id", admin.ID.String()), slog.String("reason", "superseded refresh token"))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	accessToken, err := srv.tokenService.IssueAccess(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

func (srv *administratorService) Authenticate(ctx context.Context, accessToken string) (*entity.Administrator, error) {
	admin, err := srv.resolveToken(ctx, accessToken, service.TokenTypeAccess)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "authentication failed")
	}

	return admin, nil
}

// resolveToken validates tokenString as tokenType and loads the enabled administrator it names.
func (srv *administratorService) resolveToken(ctx context.Context, tokenString string, tokenType service.TokenType) (*entity.Administrator, error) {
	if tokenString == "" {
		return nil, errors.New("token is missing")
	}

	claims, err := srv.tokenService.ValidateToken(tokenString)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("expected %s token, got %s", tokenType, claims.Type)
	}

	adminID, err := claims.AdministratorID()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	admin, err := srv.adminRepo.FindAdministratorByID(ctx, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load administrator")
	}

	if !admin.Enabled {
		return nil, errors.New("administrator is disabled")
	}

	return admin, nil
}

func (srv *administratorService) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Administrator, error) {
	admin, err := srv.adminRepo.FindAdministratorByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdministratorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdministratorNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to load administrator")
	}

	return admin, nil
}

func (srv *administratorService) UpdateAdministrator(
	ctx context.Context,
	adminID uuid.UUID,
	input *usecase.UpdateAdministratorInput,
) (*entity.Administrator, error) {
	admin, err := srv.adminRepo.UpdateAdministrator(ctx, adminID, &entity.AdministratorUpdate{
		Username:     input.Username,
		EmailAddress: input.EmailAddress,
		Enabled:      input.Enabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAdministratorNotFound):
			return nil, errors.Wrap(domainerrors.ErrAdministratorNotFound, "update administrator")
		case errors.Is(err, repository.ErrDuplicateAdministrator):
			return nil, errors.WithStack(domainerrors.ErrConflict.WithDetails("username or email address already in use"))
		}

		return nil, errors.Wrap(err, "failed to update administrator")
	}

	srv.log(ctx).Info("Administrator updated", slog.String("admin_id", adminID.String()))

	return admin, nil
}

func (srv *administratorService) ChangePassword(ctx context.Context, adminID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.PasswordNew != input.PasswordNewVerify {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "change password")
	}

	if len(input.PasswordNew) < minPasswordLength {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("new password must be at least 6 characters"))
	}

	admin, err := srv.GetProfile(ctx, adminID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return errors.Wrap(domainerrors.ErrCurrentPasswordIncorrect, "change password")
	}

	hash, err := srv.hasher.Hash(input.PasswordNew)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.adminRepo.UpdatePasswordHash(ctx, adminID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Administrator password changed", slog.String("admin_id", adminID.String()))

	return nil
}

func (srv *administratorService) EnsureBootstrapAdministrator(ctx context.Context, input *usecase.BootstrapAdministratorInput) error {
	_, err := srv.adminRepo.FindAdministratorByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Debug("Bootstrap administrator already exists", slog.String("username", input.Username))

		return nil
	}
	if !errors.Is(err, repository.ErrAdministratorNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap administrator")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Administrator{
		Username:     input.Username,
		EmailAddress: input.EmailAddress,
		PasswordHash: hash,
		Enabled:      true,
	}
	if err := srv.adminRepo.CreateAdministrator(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateAdministrator) {
			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap administrator")
	}

	srv.log(ctx).Info("Bootstrap administrator created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
	)

	return nil
}

// BootstrapParams holds dependencies for SeedBootstrapAdministrator.
type BootstrapParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	AdminUC usecase.AdministratorUsecase
	Logger  *slog.Logger
}

// SeedBootstrapAdministrator registers a start hook that creates the configured seed account.
func SeedBootstrapAdministrator(params BootstrapParams) {
	cfg := params.Config.Bootstrap
	if cfg == nil || cfg.Username == "" || cfg.Password == "" {
		params.Logger.Info("Bootstrap administrator not configured")

		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.AdminUC.EnsureBootstrapAdministrator(ctx, &usecase.BootstrapAdministratorInput{
				Username:     cfg.Username,
				EmailAddress: cfg.EmailAddress,
				Password:     cfg.Password,
			})
		},
	})
}
