// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an administrator to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// UpdateAdministratorInput carries the optional profile fields to change.
type UpdateAdministratorInput struct {
	Username     *string
	EmailAddress *string
	Enabled      *bool
}

// ChangePasswordInput carries the current password and the new one twice.
type ChangePasswordInput struct {
	Password          string
	PasswordNew       string
	PasswordNewVerify string
}

// BootstrapAdministratorInput seeds the first administrator account.
type BootstrapAdministratorInput struct {
	Username     string
	EmailAddress string
	Password     string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	EmailAddress string    `json:"emailAddress"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// RefreshTokenOutput returns a freshly issued access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"accessToken"`
}

// AdministratorUsecase defines administrator session and profile operations.
type AdministratorUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// RefreshToken issues a new access token. The refresh token itself is not rotated.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	// Authenticate resolves an access token to an enabled administrator.
	Authenticate(ctx context.Context, accessToken string) (*entity.Administrator, error)
	GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Administrator, error)
	UpdateAdministrator(ctx context.Context, adminID uuid.UUID, input *UpdateAdministratorInput) (*entity.Administrator, error)
	ChangePassword(ctx context.Context, adminID uuid.UUID, input *ChangePasswordInput) error
	// EnsureBootstrapAdministrator creates the seed account unless the username already exists.
	EnsureBootstrapAdministrator(ctx context.Context, input *BootstrapAdministratorInput) error
}
