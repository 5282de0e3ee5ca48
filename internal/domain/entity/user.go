// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OSType is the platform a device token was issued for.
type OSType string

const (
	OSTypeAndroid OSType = "android"
	OSTypeIOS     OSType = "ios"
	OSTypeWeb     OSType = "web"
)

// IsValid checks if the OSType is a supported platform.
func (o OSType) IsValid() bool {
	switch o {
	case OSTypeAndroid, OSTypeIOS, OSTypeWeb:
		return true
	default:
		return false
	}
}

// User is a logical end-user inside one tenant's namespace, addressed by Reference.
// The pair (Reference, AppID) is unique.
type User struct {
	ID        uuid.UUID      `json:"id"`
	Reference string         `json:"reference"`
	AppID     uuid.UUID      `json:"-"`
	Enabled   bool           `json:"enabled"`
	Devices   []*DeviceToken `json:"devices"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

// FindDevice returns the user's device registered with token, or nil.
func (u *User) FindDevice(token string) *DeviceToken {
	for _, device := range u.Devices {
		if device.Token == token {
			return device
		}
	}

	return nil
}

// DeviceToken is one installed client instance eligible for delivery.
// A token string is only unique per user, never assumed globally unique.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"-"`
	OSType    OSType    `json:"osType"`
	UserID    uuid.UUID `json:"-"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
