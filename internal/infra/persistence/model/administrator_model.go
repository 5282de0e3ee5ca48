package model

import (
	"time"

	"github.com/google/uuid"
)

// AdministratorModel is the GORM-specific struct for the 'administrators' table.
type AdministratorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	EmailAddress string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	RefreshToken *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdministratorModel) TableName() string {
	return "administrators"
}
