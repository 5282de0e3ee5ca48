package repository

import (
	"context"
	"encoding/json"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a delivery record does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for delivery record persistence.
type NotificationRepository interface {
	// CreateNotification persists a new record, normally in PENDING state.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// UpdateNotificationResult moves a record to status and stores result.
	UpdateNotificationResult(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, result json.RawMessage) error

	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByApp lists records of one app, newest first.
	FindNotificationsByApp(ctx context.Context, appID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
