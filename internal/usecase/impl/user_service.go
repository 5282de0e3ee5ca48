package impl

import (
	"context"
	"log/slog"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureUser creates the user on first sight, otherwise re-enables it and adds or reactivates
// the device. The token is matched per user only, so no duplicate device row is ever created.
func (srv *userService) EnsureUser(ctx context.Context, appID uuid.UUID, input *usecase.EnsureUserInput) (*entity.User, error) {
	if !input.OSType.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("osType must be one of android, ios, web"))
	}

	var ensured *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindUserByReference(ctx, appID, input.Reference)
		if errors.Is(err, repository.ErrUserNotFound) {
			ensured, err = srv.createUser(ctx, userRepo, appID, input)

			return err
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if err := srv.reviveUser(ctx, userRepo, user, input); err != nil {
			return err
		}
		ensured = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to ensure user",
			slog.String("app_id", appID.String()),
			slog.String("reference", input.Reference),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to ensure user")
	}

	srv.log(ctx).Info("User ensured",
		slog.String("app_id", appID.String()),
		slog.String("user_id", ensured.ID.String()),
		slog.Int("devices", len(ensured.Devices)),
	)

	return ensured, nil
}

func (srv *userService) createUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	appID uuid.UUID,
	input *usecase.EnsureUserInput,
) (*entity.User, error) {
	user := &entity.User{
		Reference: input.Reference,
		AppID:     appID,
		Enabled:   true,
		Devices: []*entity.DeviceToken{
			{Token: input.Token, OSType: input.OSType, Active: true},
		},
	}

	if err := userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

func (srv *userService) reviveUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	user *entity.User,
	input *usecase.EnsureUserInput,
) error {
	if !user.Enabled {
		if err := userRepo.SetUserEnabled(ctx, user.ID, true); err != nil {
			return errors.Wrap(err, "failed to enable user")
		}
		user.Enabled = true
	}

	device := user.FindDevice(input.Token)
	if device == nil {
		device = &entity.DeviceToken{
			Token:  input.Token,
			OSType: input.OSType,
			UserID: user.ID,
			Active: true,
		}
		if err := userRepo.CreateDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to create device")
		}
		user.Devices = append(user.Devices, device)

		return nil
	}

	if !device.Active {
		if err := userRepo.SetDeviceActive(ctx, device.ID, true); err != nil {
			return errors.Wrap(err, "failed to activate device")
		}
		device.Active = true
	}

	return nil
}

func (srv *userService) UnEnsureUser(ctx context.Context, appID uuid.UUID, reference string) error {
	var deactivated int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindUserByReference(ctx, appID, reference)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "unensure user")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := userRepo.SetUserEnabled(ctx, user.ID, false); err != nil {
			return errors.Wrap(err, "failed to disable user")
		}

		deactivated, err = userRepo.DeactivateUserDevices(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to deactivate devices")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to unensure user")
	}

	srv.log(ctx).Info("User unensured",
		slog.String("app_id", appID.String()),
		slog.String("reference", reference),
		slog.Int64("deactivated_devices", deactivated),
	)

	return nil
}
