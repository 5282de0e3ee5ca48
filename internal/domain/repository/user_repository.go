package repository

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when no user exists for a (reference, app) pair.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the (reference, app) pair is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrDeviceNotFound is returned when a device does not exist.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the user already owns the token.
	ErrDuplicateDevice = errors.New("device already exists")
)

// UserRepository defines the user/device directory operations.
type UserRepository interface {
	// FindUserByReference loads a tenant-scoped user with all of its devices.
	FindUserByReference(ctx context.Context, appID uuid.UUID, reference string) (*entity.User, error)

	// CreateUser persists a user together with its devices.
	CreateUser(ctx context.Context, user *entity.User) error

	// SetUserEnabled toggles the user's enabled flag.
	SetUserEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error

	// CreateDevice adds a device token to an existing user.
	CreateDevice(ctx context.Context, device *entity.DeviceToken) error

	// SetDeviceActive toggles one device's active flag.
	SetDeviceActive(ctx context.Context, deviceID uuid.UUID, active bool) error

	// DeactivateUserDevices marks every device of the user inactive and returns how many changed.
	DeactivateUserDevices(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindActiveTokens returns the tokens of active devices owned by enabled users
	// matching references within the app, in device registration order.
	FindActiveTokens(ctx context.Context, appID uuid.UUID, references []string) ([]string, error)

	// FindAllActiveTokens returns the tokens of every active device of every enabled user of the app.
	FindAllActiveTokens(ctx context.Context, appID uuid.UUID) ([]string, error)
}
