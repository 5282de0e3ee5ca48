package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It is the audit record of one dispatch attempt.
type NotificationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AppID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Mode      string         `gorm:"type:varchar(32);not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Status    string         `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	Result    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
