package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/api/response"
	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves device registration for signed tenant requests.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// EnsureUserRequest represents the request body for registering a user device
type EnsureUserRequest struct {
	Reference string `json:"reference" validate:"required,max=255"`
	OSType    string `json:"osType" validate:"required,oneof=android ios web"`
	Token     string `json:"token" validate:"required"`
}

// UnEnsureUserRequest represents the request body for unregistering a user
type UnEnsureUserRequest struct {
	Reference string `json:"reference" validate:"required,max=255"`
}

func (h *UserHandler) EnsureUser(c echo.Context) error {
	app, ok := deliverycontext.GetApp(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	var req EnsureUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.EnsureUser(c.Request().Context(), app.ID, &usecase.EnsureUserInput{
		Reference: req.Reference,
		OSType:    entity.OSType(req.OSType),
		Token:     req.Token,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) UnEnsureUser(c echo.Context) error {
	app, ok := deliverycontext.GetApp(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	var req UnEnsureUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.userUC.UnEnsureUser(c.Request().Context(), app.ID, req.Reference); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User unensured successfully"})
}
