package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHistoryPageSize = 20

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Registry         service.PushBackendRegistry
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Metrics          service.DeliveryMetrics
	Logger           *slog.Logger
}

// notificationService is the dispatch engine. It only needs a validated app id, so both the
// signature guard and the administrator session gate end up here.
type notificationService struct {
	registry         service.PushBackendRegistry
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	metrics          service.DeliveryMetrics
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		registry:         params.Registry,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch validates the request shape, obtains the app's backend, records the attempt as
// PENDING and runs the mode algorithm. The record always ends in SENT, PARTIAL or FAILED.
func (srv *notificationService) Dispatch(ctx context.Context, appID uuid.UUID, req *usecase.DispatchRequest) (*usecase.DispatchOutput, error) {
	cmd, err := usecase.NewDispatchCommand(req)
	if err != nil {
		return nil, err
	}

	backend, err := srv.registry.Get(ctx, appID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode notification payload")
	}

	record := &entity.Notification{
		AppID:   appID,
		Mode:    cmd.Mode(),
		Payload: payload,
		Status:  entity.NotificationStatusPending,
	}
	if err := srv.notificationRepo.CreateNotification(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create notification record")
	}

	srv.log(ctx).Info("Dispatch started",
		slog.String("notification_id", record.ID.String()),
		slog.String("app_id", appID.String()),
		slog.String("mode", string(cmd.Mode())),
	)

	started := time.Now()

	result, err := srv.execute(ctx, appID, backend, cmd)
	if err != nil {
		srv.fail(ctx, record, err, started)

		return nil, err
	}

	successCount, failureCount := result.Counts()
	status := entity.NotificationStatusSent
	if failureCount > 0 {
		status = entity.NotificationStatusPartial
	}

	if err := srv.complete(ctx, record, status, result, started); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Dispatch finished",
		slog.String("notification_id", record.ID.String()),
		slog.String("status", string(status)),
		slog.Int("success_count", successCount),
		slog.Int("failure_count", failureCount),
	)

	return &usecase.DispatchOutput{
		NotificationID: record.ID,
		Status:         status,
		Result:         result,
	}, nil
}

func (srv *notificationService) execute(
	ctx context.Context,
	appID uuid.UUID,
	backend service.PushBackend,
	cmd usecase.DispatchCommand,
) (usecase.DispatchResult, error) {
	switch c := cmd.(type) {
	case *usecase.SingleCommand:
		return srv.sendSingle(ctx, appID, backend, c)
	case *usecase.PerRecipientCommand:
		return srv.sendPerRecipient(ctx, appID, backend, c)
	case *usecase.MulticastCommand:
		return srv.sendMulticast(ctx, appID, backend, c)
	default:
		return nil, errors.Errorf("unsupported dispatch command %T", cmd)
	}
}

func (srv *notificationService) sendSingle(
	ctx context.Context,
	appID uuid.UUID,
	backend service.PushBackend,
	cmd *usecase.SingleCommand,
) (usecase.DispatchResult, error) {
	tokens, err := srv.userRepo.FindActiveTokens(ctx, appID, []string{cmd.Reference})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tokens")
	}
	if len(tokens) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrNoActiveTokens, "reference %q", cmd.Reference)
	}

	messageID, err := backend.Send(ctx, tokens[0], cmd.Message)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDeliveryFailed, err.Error())
	}

	return &usecase.SingleResult{MessageID: messageID, SuccessCount: 1}, nil
}

func (srv *notificationService) sendPerRecipient(
	ctx context.Context,
	appID uuid.UUID,
	backend service.PushBackend,
	cmd *usecase.PerRecipientCommand,
) (usecase.DispatchResult, error) {
	result := &usecase.PerRecipientResult{
		Results: make([]usecase.RecipientResult, 0, len(cmd.Recipients)),
	}

	for _, recipient := range cmd.Recipients {
		item := usecase.RecipientResult{Reference: recipient.Reference}

		tokens, err := srv.userRepo.FindActiveTokens(ctx, appID, []string{recipient.Reference})
		switch {
		case err != nil:
			srv.log(ctx).Warn("Recipient token lookup failed",
				slog.String("app_id", appID.String()),
				slog.String("reference", recipient.Reference),
				slog.Any("error", err),
			)
			item.Error = "failed to resolve tokens"
		case len(tokens) == 0:
			item.Error = "no active tokens"
		default:
			messageID, sendErr := backend.Send(ctx, tokens[0], recipient.Message)
			if sendErr != nil {
				item.Error = sendErr.Error()
			} else {
				item.MessageID = messageID
			}
		}

		if item.Error != "" {
			result.FailureCount++
		} else {
			result.SuccessCount++
		}
		result.Results = append(result.Results, item)
	}

	return result, nil
}

// sendMulticast sends in sequential batches of at most service.MaxMulticastTokens. A failed
// batch call marks each of its tokens failed and the remaining batches still go out.
func (srv *notificationService) sendMulticast(
	ctx context.Context,
	appID uuid.UUID,
	backend service.PushBackend,
	cmd *usecase.MulticastCommand,
) (usecase.DispatchResult, error) {
	var (
		tokens []string
		err    error
	)
	if cmd.ForAll {
		tokens, err = srv.userRepo.FindAllActiveTokens(ctx, appID)
	} else {
		tokens, err = srv.userRepo.FindActiveTokens(ctx, appID, cmd.References)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tokens")
	}

	tokens = uniqueTokens(tokens)
	if len(tokens) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoActiveTokens, "multicast")
	}

	result := &usecase.MulticastResult{
		TotalTokens: len(tokens),
		Responses:   make([]service.SendResponse, 0, len(tokens)),
	}

	for start := 0; start < len(tokens); start += service.MaxMulticastTokens {
		batch := tokens[start:min(start+service.MaxMulticastTokens, len(tokens))]

		resp, err := backend.SendMulticast(ctx, batch, cmd.Message)
		if err != nil {
			srv.log(ctx).Warn("Multicast batch failed",
				slog.String("app_id", appID.String()),
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)

			for range batch {
				result.Responses = append(result.Responses, service.SendResponse{Error: err.Error()})
			}
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += resp.SuccessCount
		result.FailureCount += resp.FailureCount
		result.Responses = append(result.Responses, resp.Responses...)
	}

	return result, nil
}

// uniqueTokens drops repeated tokens, keeping first-seen order.
func uniqueTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}

	return unique
}

func (srv *notificationService) complete(
	ctx context.Context,
	record *entity.Notification,
	status entity.NotificationStatus,
	result usecase.DispatchResult,
	started time.Time,
) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		srv.fail(ctx, record, errors.Wrap(err, "failed to encode result"), started)

		return errors.Wrap(err, "failed to encode result")
	}

	// Recorded even when the caller has gone away.
	if err := srv.notificationRepo.UpdateNotificationResult(context.WithoutCancel(ctx), record.ID, status, encoded); err != nil {
		err = errors.Wrap(err, "failed to store notification result")
		srv.fail(ctx, record, err, started)

		return err
	}

	record.Status = status
	record.Result = encoded

	successCount, failureCount := result.Counts()
	srv.afterDispatch(ctx, record, successCount, failureCount, started)

	return nil
}

// fail moves the record to FAILED. Errors here are logged only, the dispatch error wins.
func (srv *notificationService) fail(ctx context.Context, record *entity.Notification, cause error, started time.Time) {
	encoded, err := json.Marshal(&usecase.FailedResult{Error: cause.Error()})
	if err != nil {
		encoded = json.RawMessage(`{"error":"unknown error"}`)
	}

	if err := srv.notificationRepo.UpdateNotificationResult(
		context.WithoutCancel(ctx), record.ID, entity.NotificationStatusFailed, encoded,
	); err != nil {
		srv.log(ctx).Error("Failed to mark notification as failed",
			slog.String("notification_id", record.ID.String()),
			slog.Any("error", err),
		)
	}

	record.Status = entity.NotificationStatusFailed
	record.Result = encoded

	srv.log(ctx).Warn("Dispatch failed",
		slog.String("notification_id", record.ID.String()),
		slog.Any("error", cause),
	)

	srv.afterDispatch(ctx, record, 0, 0, started)
}

// afterDispatch publishes the outcome event and records metrics. Neither can fail the dispatch.
func (srv *notificationService) afterDispatch(ctx context.Context, record *entity.Notification, successCount, failureCount int, started time.Time) {
	srv.metrics.ObserveDispatch(string(record.Mode), string(record.Status), successCount, failureCount, time.Since(started))

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: record.ID.String(),
		AppID:          record.AppID.String(),
		Mode:           string(record.Mode),
		Status:         string(record.Status),
		SuccessCount:   successCount,
		FailureCount:   failureCount,
	}
	if err := srv.publisher.PublishNotificationEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish notification event",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) GetNotification(ctx context.Context, notificationID uuid.UUID) (*entity.Notification, error) {
	record, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, "get notification")
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return record, nil
}

func (srv *notificationService) ListNotifications(ctx context.Context, appID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultHistoryPageSize
	}

	records, err := srv.notificationRepo.FindNotificationsByApp(ctx, appID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return records, nil
}
