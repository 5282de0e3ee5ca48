package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/api/response"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AppHandlerParams holds dependencies for AppHandler, injected by Fx.
type AppHandlerParams struct {
	fx.In

	AppUC  usecase.AppUsecase
	Logger *slog.Logger
}

// AppHandler serves tenant app management for administrators.
type AppHandler struct {
	appUC  usecase.AppUsecase
	logger *slog.Logger
}

// NewAppHandler is the constructor for AppHandler
func NewAppHandler(params AppHandlerParams) *AppHandler {
	return &AppHandler{
		appUC:  params.AppUC,
		logger: params.Logger,
	}
}

// CreateAppRequest represents the request body for creating an app
type CreateAppRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	FirebaseConfig json.RawMessage `json:"firebaseConfig" validate:"required"`
}

// UpdateAppRequest represents the request body for updating an app
type UpdateAppRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Enabled *bool   `json:"enabled"`
}

// CreateApp registers a tenant. The response is the only time the API secret is disclosed.
func (h *AppHandler) CreateApp(c echo.Context) error {
	var req CreateAppRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.appUC.CreateApp(c.Request().Context(), &usecase.CreateAppInput{
		Name:           req.Name,
		FirebaseConfig: req.FirebaseConfig,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

func (h *AppHandler) ListApps(c echo.Context) error {
	apps, err := h.appUC.ListApps(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apps)
}

func (h *AppHandler) GetApp(c echo.Context) error {
	appID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid app ID")
	}

	app, err := h.appUC.GetApp(c.Request().Context(), appID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

func (h *AppHandler) UpdateApp(c echo.Context) error {
	appID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid app ID")
	}

	var req UpdateAppRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	app, err := h.appUC.UpdateApp(c.Request().Context(), appID, &usecase.UpdateAppInput{
		Name:    req.Name,
		Enabled: req.Enabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

func (h *AppHandler) DeleteApp(c echo.Context) error {
	appID, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, codeInvalidID, "Invalid app ID")
	}

	if err := h.appUC.DeleteApp(c.Request().Context(), appID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "App deleted successfully"})
}
