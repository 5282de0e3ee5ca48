package usecase

import (
	"context"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchOutput summarizes one dispatch.
type DispatchOutput struct {
	NotificationID uuid.UUID                 `json:"notificationId"`
	Status         entity.NotificationStatus `json:"status"`
	Result         any                       `json:"result"`
}

// NotificationUsecase defines the dispatch engine and the delivery history.
type NotificationUsecase interface {
	// Dispatch delivers req on behalf of an already authenticated app.
	Dispatch(ctx context.Context, appID uuid.UUID, req *DispatchRequest) (*DispatchOutput, error)
	GetNotification(ctx context.Context, notificationID uuid.UUID) (*entity.Notification, error)
	ListNotifications(ctx context.Context, appID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
