package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// A reference is unique within one app.
type UserModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Reference string              `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_reference_app"`
	AppID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_users_reference_app;index"`
	Enabled   bool                `gorm:"not null;default:true"`
	Devices   []*DeviceTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// A token is unique per user only.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Token     string    `gorm:"type:text;not null;uniqueIndex:idx_device_tokens_user_token"`
	OSType    string    `gorm:"column:os_type;type:varchar(16);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_device_tokens_user_token;index"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
