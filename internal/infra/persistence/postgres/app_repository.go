// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// appRepository implements the repository.AppRepository interface.
type appRepository struct {
	db *gorm.DB
}

// NewAppRepository is the constructor for appRepository.
func NewAppRepository(db *gorm.DB) repository.AppRepository {
	return &appRepository{
		db: db,
	}
}

// CreateApp persists a new tenant app.
func (repo *appRepository) CreateApp(ctx context.Context, app *entity.App) error {
	appM := fromAppDomain(app)

	if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAPIKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create app")
	}

	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	return nil
}

// FindAppByID retrieves an app by its unique ID.
func (repo *appRepository) FindAppByID(ctx context.Context, id uuid.UUID) (*entity.App, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindAppByAPIKey retrieves an app by its API key.
func (repo *appRepository) FindAppByAPIKey(ctx context.Context, apiKey string) (*entity.App, error) {
	return repo.findOne(ctx, "api_key = ?", apiKey)
}

func (repo *appRepository) findOne(ctx context.Context, query string, arg any) (*entity.App, error) {
	var appM model.AppModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&appM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find app")
	}

	return toAppDomain(&appM), nil
}

// ListApps returns every app, oldest first.
func (repo *appRepository) ListApps(ctx context.Context) ([]*entity.App, error) {
	var appModels []*model.AppModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&appModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list apps")
	}

	apps := make([]*entity.App, 0, len(appModels))
	for _, appM := range appModels {
		apps = append(apps, toAppDomain(appM))
	}

	return apps, nil
}

// UpdateApp applies the provided fields and returns the updated app.
func (repo *appRepository) UpdateApp(ctx context.Context, id uuid.UUID, update *entity.AppUpdate) (*entity.App, error) {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Enabled != nil {
		updates["enabled"] = *update.Enabled
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.AppModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update app")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrAppNotFound
		}
	}

	return repo.FindAppByID(ctx, id)
}

// DeleteApp removes an app by its ID.
func (repo *appRepository) DeleteApp(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete app")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAppDomain(data *model.AppModel) *entity.App {
	if data == nil {
		return nil
	}

	return &entity.App{
		ID:             data.ID,
		Name:           data.Name,
		APIKey:         data.APIKey,
		APISecret:      data.APISecret,
		PushCredential: json.RawMessage(data.PushCredential),
		Enabled:        data.Enabled,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromAppDomain(data *entity.App) *model.AppModel {
	if data == nil {
		return nil
	}

	return &model.AppModel{
		ID:             data.ID,
		Name:           data.Name,
		APIKey:         data.APIKey,
		APISecret:      data.APISecret,
		PushCredential: datatypes.JSON(data.PushCredential),
		Enabled:        data.Enabled,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
