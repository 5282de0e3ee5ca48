// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Administrator is a platform operator authenticated by session tokens.
type Administrator struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"`
	Enabled      bool      `json:"enabled"`
	RefreshToken *string   `json:"-"` // The single currently valid refresh token, nil when logged out.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdministratorUpdate carries the mutable profile fields of an Administrator.
type AdministratorUpdate struct {
	Username     *string
	EmailAddress *string
	Enabled      *bool
}
