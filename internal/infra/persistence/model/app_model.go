// Package model contains the GORM-specific structs that map to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AppModel is the GORM-specific struct for the 'apps' table.
type AppModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string         `gorm:"type:varchar(255);not null"`
	APIKey         string         `gorm:"column:api_key;type:varchar(64);not null;uniqueIndex"`
	APISecret      string         `gorm:"column:api_secret;type:varchar(128);not null"`
	PushCredential datatypes.JSON `gorm:"type:jsonb;not null"`
	Enabled        bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppModel) TableName() string {
	return "apps"
}
