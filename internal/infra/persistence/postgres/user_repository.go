package postgres

import (
	"context"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
// It owns both the users and device_tokens tables.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByReference loads the user and all of its devices.
func (repo *userRepository) FindUserByReference(ctx context.Context, appID uuid.UUID, reference string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Devices", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("app_id = ? AND reference = ?", appID, reference).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by reference")
	}

	return toUserDomain(&userM), nil
}

// CreateUser persists the user together with its devices.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	*user = *toUserDomain(userM)

	return nil
}

func (repo *userRepository) SetUserEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("enabled", enabled)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user enabled flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateDevice adds a device token to an existing user.
func (repo *userRepository) CreateDevice(ctx context.Context, device *entity.DeviceToken) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *userRepository) SetDeviceActive(ctx context.Context, deviceID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", deviceID).
		Update("active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateUserDevices marks every active device of the user inactive.
func (repo *userRepository) DeactivateUserDevices(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Update("active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate user devices")
	}

	return result.RowsAffected, nil
}

// FindActiveTokens resolves references to the tokens of active devices owned by enabled users.
func (repo *userRepository) FindActiveTokens(ctx context.Context, appID uuid.UUID, references []string) ([]string, error) {
	if len(references) == 0 {
		return []string{}, nil
	}

	var tokens []string
	if err := repo.activeTokensQuery(ctx, appID, references).
		Pluck("device_tokens.token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens")
	}

	return tokens, nil
}

// FindAllActiveTokens resolves every active token of every enabled user of the app.
func (repo *userRepository) FindAllActiveTokens(ctx context.Context, appID uuid.UUID) ([]string, error) {
	var tokens []string
	if err := repo.activeTokensQuery(ctx, appID, nil).
		Pluck("device_tokens.token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all active tokens")
	}

	return tokens, nil
}

// activeTokensQuery selects the tokens of active devices whose user is enabled and belongs to
// appID, narrowed to references when they are given.
func (repo *userRepository) activeTokensQuery(ctx context.Context, appID uuid.UUID, references []string) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Joins("JOIN users ON users.id = device_tokens.user_id").
		Where("users.app_id = ? AND users.enabled = ? AND device_tokens.active = ?", appID, true, true)
	if references != nil {
		query = query.Where("users.reference IN ?", references)
	}

	return query.Order("device_tokens.created_at ASC, device_tokens.id ASC")
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	devices := make([]*entity.DeviceToken, 0, len(data.Devices))
	for _, deviceM := range data.Devices {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return &entity.User{
		ID:        data.ID,
		Reference: data.Reference,
		AppID:     data.AppID,
		Enabled:   data.Enabled,
		Devices:   devices,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	devices := make([]*model.DeviceTokenModel, 0, len(data.Devices))
	for _, device := range data.Devices {
		devices = append(devices, fromDeviceDomain(device))
	}

	return &model.UserModel{
		ID:        data.ID,
		Reference: data.Reference,
		AppID:     data.AppID,
		Enabled:   data.Enabled,
		Devices:   devices,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeviceDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		Token:     data.Token,
		OSType:    entity.OSType(data.OSType),
		UserID:    data.UserID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		OSType:    string(data.OSType),
		UserID:    data.UserID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
