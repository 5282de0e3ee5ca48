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

// administratorRepository implements the repository.AdministratorRepository interface.
type administratorRepository struct {
	db *gorm.DB
}

// NewAdministratorRepository is the constructor for administratorRepository.
func NewAdministratorRepository(db *gorm.DB) repository.AdministratorRepository {
	return &administratorRepository{
		db: db,
	}
}

func (repo *administratorRepository) CreateAdministrator(ctx context.Context, admin *entity.Administrator) error {
	adminM := fromAdministratorDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdministrator
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create administrator")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func (repo *administratorRepository) FindAdministratorByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *administratorRepository) FindAdministratorByUsername(ctx context.Context, username string) (*entity.Administrator, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *administratorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Administrator, error) {
	var adminM model.AdministratorModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdministratorNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator")
	}

	return toAdministratorDomain(&adminM), nil
}

func (repo *administratorRepository) UpdateAdministrator(ctx context.Context, id uuid.UUID, update *entity.AdministratorUpdate) (*entity.Administrator, error) {
	updates := map[string]any{}
	if update.Username != nil {
		updates["username"] = *update.Username
	}
	if update.EmailAddress != nil {
		updates["email_address"] = *update.EmailAddress
	}
	if update.Enabled != nil {
		updates["enabled"] = *update.Enabled
		if !*update.Enabled {
			// A disabled account loses its live session.
			updates["refresh_token"] = nil
		}
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.AdministratorModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return nil, repository.ErrDuplicateAdministrator
			}

			return nil, errors.Wrap(result.Error, "failed to update administrator")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrAdministratorNotFound
		}
	}

	return repo.FindAdministratorByID(ctx, id)
}

func (repo *administratorRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumn(ctx, id, "password_hash", passwordHash)
}

func (repo *administratorRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error {
	return repo.updateColumn(ctx, id, "refresh_token", refreshToken)
}

func (repo *administratorRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdministratorModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update administrator %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdministratorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAdministratorDomain(data *model.AdministratorModel) *entity.Administrator {
	if data == nil {
		return nil
	}

	return &entity.Administrator{
		ID:           data.ID,
		Username:     data.Username,
		EmailAddress: data.EmailAddress,
		PasswordHash: data.PasswordHash,
		Enabled:      data.Enabled,
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAdministratorDomain(data *entity.Administrator) *model.AdministratorModel {
	if data == nil {
		return nil
	}

	return &model.AdministratorModel{
		ID:           data.ID,
		Username:     data.Username,
		EmailAddress: data.EmailAddress,
		PasswordHash: data.PasswordHash,
		Enabled:      data.Enabled,
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
