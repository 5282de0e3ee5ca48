package repository

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAdministratorNotFound is returned when an administrator is not found.
	ErrAdministratorNotFound = errors.New("administrator not found")
	// ErrDuplicateAdministrator is returned when the username or email address is taken.
	ErrDuplicateAdministrator = errors.New("administrator already exists")
)

// AdministratorRepository defines the interface for administrator persistence.
type AdministratorRepository interface {
	CreateAdministrator(ctx context.Context, admin *entity.Administrator) error

	FindAdministratorByID(ctx context.Context, id uuid.UUID) (*entity.Administrator, error)

	FindAdministratorByUsername(ctx context.Context, username string) (*entity.Administrator, error)

	// UpdateAdministrator applies the non-nil profile fields of update and returns the stored record.
	UpdateAdministrator(ctx context.Context, id uuid.UUID, update *entity.AdministratorUpdate) (*entity.Administrator, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateRefreshToken overwrites the stored refresh token. A nil token clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error
}
