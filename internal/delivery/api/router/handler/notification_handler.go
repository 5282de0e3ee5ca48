package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/api/response"
	deliverycontext "pushgate/internal/delivery/context"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxHistoryPageSize = 100

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves dispatch for tenants and administrators, and delivery history.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// AdminDispatchRequest is a dispatch request that names its target app.
type AdminDispatchRequest struct {
	AppID string `json:"appId" validate:"required,uuid"`
	usecase.DispatchRequest
}

// Send dispatches on behalf of the app that signed the request.
func (h *NotificationHandler) Send(c echo.Context) error {
	app, ok := deliverycontext.GetApp(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	var req usecase.DispatchRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return h.dispatch(c, app.ID, &req)
}

// AdminSend dispatches for the app named in the body.
func (h *NotificationHandler) AdminSend(c echo.Context) error {
	var req AdminDispatchRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return h.dispatch(c, uuid.MustParse(req.AppID), &req.DispatchRequest)
}

func (h *NotificationHandler) dispatch(c echo.Context, appID uuid.UUID, req *usecase.DispatchRequest) error {
	out, err := h.notificationUC.Dispatch(c.Request().Context(), appID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// ListAppNotifications returns an app's delivery history, newest first.
func (h *NotificationHandler) ListAppNotifications(c echo.Context) error {
	appID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid app ID")
	}

	limit, ok := queryInt(c, "limit", 0)
	if !ok || limit > maxHistoryPageSize {
		return response.BadRequest(c, codeValidationFailed, "limit must be between 0 and 100")
	}

	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return response.BadRequest(c, codeValidationFailed, "offset must be a non-negative integer")
	}

	records, err := h.notificationUC.ListNotifications(c.Request().Context(), appID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notificationID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid notification ID")
	}

	record, err := h.notificationUC.GetNotification(c.Request().Context(), notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
