// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// App is a tenant application: an independently credentialed client of the gateway
// owning its own users, devices and push-provider credential.
type App struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	APIKey         string          `json:"apiKey"`
	APISecret      string          `json:"-"` // Shared HMAC secret. Only disclosed once, at creation.
	PushCredential json.RawMessage `json:"-"` // Opaque provider credential (Firebase service account JSON).
	Enabled        bool            `json:"enabled"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AppUpdate carries the mutable fields of an App. Nil fields are left untouched.
type AppUpdate struct {
	Name    *string
	Enabled *bool
}
