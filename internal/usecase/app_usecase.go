package usecase

import (
	"context"
	"encoding/json"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAppInput defines the data required to register a tenant app.
type CreateAppInput struct {
	Name           string
	FirebaseConfig json.RawMessage
}

// UpdateAppInput carries the optional app fields to change.
type UpdateAppInput struct {
	Name    *string
	Enabled *bool
}

// CreateAppOutput is the only response that ever discloses the API secret.
type CreateAppOutput struct {
	*entity.App
	APISecret string `json:"apiSecret"`
}

// AppUsecase defines tenant app administration.
type AppUsecase interface {
	CreateApp(ctx context.Context, input *CreateAppInput) (*CreateAppOutput, error)
	ListApps(ctx context.Context) ([]*entity.App, error)
	GetApp(ctx context.Context, appID uuid.UUID) (*entity.App, error)
	// UpdateApp changes name or enabled flag. Disabling releases the cached push backend.
	UpdateApp(ctx context.Context, appID uuid.UUID, input *UpdateAppInput) (*entity.App, error)
	DeleteApp(ctx context.Context, appID uuid.UUID) error
}
