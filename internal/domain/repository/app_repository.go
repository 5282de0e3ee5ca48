// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for app persistence.
var (
	// ErrAppNotFound is returned when an app is not found.
	ErrAppNotFound = errors.New("app not found")
	// ErrDuplicateAPIKey is returned when a generated API key collides with an existing one.
	ErrDuplicateAPIKey = errors.New("api key already exists")
)

// AppRepository defines the interface for tenant app persistence.
type AppRepository interface {
	// CreateApp persists a new app including its secret and push credential.
	CreateApp(ctx context.Context, app *entity.App) error

	// FindAppByID retrieves an app by ID regardless of its enabled flag.
	FindAppByID(ctx context.Context, id uuid.UUID) (*entity.App, error)

	// FindAppByAPIKey retrieves an app by its unique API key regardless of its enabled flag.
	FindAppByAPIKey(ctx context.Context, apiKey string) (*entity.App, error)

	// ListApps returns all apps ordered by creation time.
	ListApps(ctx context.Context) ([]*entity.App, error)

	// UpdateApp applies the non-nil fields of update and returns the stored app.
	UpdateApp(ctx context.Context, id uuid.UUID, update *entity.AppUpdate) (*entity.App, error)

	// DeleteApp removes an app.
	DeleteApp(ctx context.Context, id uuid.UUID) error
}
