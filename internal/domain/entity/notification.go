// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DeliveryMode selects the send algorithm used by the dispatch engine.
type DeliveryMode string

const (
	// DeliveryModeSingle sends one message to the first active token of one reference.
	DeliveryModeSingle DeliveryMode = "single"
	// DeliveryModePerRecipient pairs references and messages positionally.
	DeliveryModePerRecipient DeliveryMode = "perRecipient"
	// DeliveryModeMulticast fans one message out to many tokens in batches.
	DeliveryModeMulticast DeliveryMode = "multicast"
)

// NotificationStatus is the lifecycle state of a delivery record.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusPartial NotificationStatus = "PARTIAL"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// IsTerminal reports whether the status is final.
func (s NotificationStatus) IsTerminal() bool {
	return s == NotificationStatusSent || s == NotificationStatusPartial || s == NotificationStatusFailed
}

// Notification is the auditable record of one send attempt.
type Notification struct {
	ID        uuid.UUID          `json:"id"`
	AppID     uuid.UUID          `json:"appId"`
	Mode      DeliveryMode       `json:"mode"`
	Payload   json.RawMessage    `json:"payload"`
	Status    NotificationStatus `json:"status"`
	Result    json.RawMessage    `json:"result,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// PushNotification is the user-visible part of a push message.
type PushNotification struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// PushMessage is one payload item handed to the push backend.
type PushMessage struct {
	Notification *PushNotification `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}
