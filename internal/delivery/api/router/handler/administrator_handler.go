package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/api/response"
	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/constants"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderRefreshToken carries the refresh token on the refresh endpoint.
const HeaderRefreshToken = constants.HeaderRefreshToken

// AdministratorHandlerParams holds dependencies for AdministratorHandler, injected by Fx.
type AdministratorHandlerParams struct {
	fx.In

	AdminUC usecase.AdministratorUsecase
	Logger  *slog.Logger
}

// AdministratorHandler serves login, refresh and the administrator's own account.
type AdministratorHandler struct {
	adminUC usecase.AdministratorUsecase
	logger  *slog.Logger
}

// NewAdministratorHandler is the constructor for AdministratorHandler
func NewAdministratorHandler(params AdministratorHandlerParams) *AdministratorHandler {
	return &AdministratorHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// LoginRequest represents the request body for administrator login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAdministratorRequest represents the request body for updating an administrator
type UpdateAdministratorRequest struct {
	Username     *string `json:"username" validate:"omitempty,min=1,max=255"`
	EmailAddress *string `json:"emailAddress" validate:"omitempty,email"`
	Enabled      *bool   `json:"enabled"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	Password          string `json:"password" validate:"required"`
	PasswordNew       string `json:"passwordNew" validate:"required"`
	PasswordNewVerify string `json:"passwordNewVerify" validate:"required"`
}

func (h *AdministratorHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.adminUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// RefreshToken exchanges the x-refresh-token header for a new access token.
func (h *AdministratorHandler) RefreshToken(c echo.Context) error {
	out, err := h.adminUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: c.Request().Header.Get(HeaderRefreshToken),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdministratorHandler) GetProfile(c echo.Context) error {
	admin, ok := deliverycontext.GetAdministrator(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	return response.Success(c, http.StatusOK, admin)
}

func (h *AdministratorHandler) UpdateAdministrator(c echo.Context) error {
	adminID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid administrator ID")
	}

	var req UpdateAdministratorRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	admin, err := h.adminUC.UpdateAdministrator(c.Request().Context(), adminID, &usecase.UpdateAdministratorInput{
		Username:     req.Username,
		EmailAddress: req.EmailAddress,
		Enabled:      req.Enabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin)
}

func (h *AdministratorHandler) ChangePassword(c echo.Context) error {
	adminID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid administrator ID")
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.adminUC.ChangePassword(c.Request().Context(), adminID, &usecase.ChangePasswordInput{
		Password:          req.Password,
		PasswordNew:       req.PasswordNew,
		PasswordNewVerify: req.PasswordNewVerify,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
