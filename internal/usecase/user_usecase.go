package usecase

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// EnsureUserInput registers a device token under a tenant-scoped reference.
type EnsureUserInput struct {
	Reference string
	OSType    entity.OSType
	Token     string
}

// UserUsecase defines the user/device directory operations exposed to tenants.
type UserUsecase interface {
	// EnsureUser upserts the user and its device, re-enabling both when previously disabled.
	EnsureUser(ctx context.Context, appID uuid.UUID, input *EnsureUserInput) (*entity.User, error)
	// UnEnsureUser disables the user and deactivates all of its devices.
	UnEnsureUser(ctx context.Context, appID uuid.UUID, reference string) error
}
