// Package router contains routing for the HTTP delivery.
package router

import (
	"pushgate/config"
	"pushgate/internal/delivery/api/middleware"
	"pushgate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdministratorHandler *handler.AdministratorHandler
	AppHandler           *handler.AppHandler
	UserHandler          *handler.UserHandler
	NotificationHandler  *handler.NotificationHandler
	AdminAuthMiddleware  *middleware.AdminAuthMiddleware
	SignatureMiddleware  *middleware.SignatureMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	administratorHandler *handler.AdministratorHandler
	appHandler           *handler.AppHandler
	userHandler          *handler.UserHandler
	notificationHandler  *handler.NotificationHandler
	adminAuth            *middleware.AdminAuthMiddleware
	signature            *middleware.SignatureMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		administratorHandler: params.AdministratorHandler,
		appHandler:           params.AppHandler,
		userHandler:          params.UserHandler,
		notificationHandler:  params.NotificationHandler,
		adminAuth:            params.AdminAuthMiddleware,
		signature:            params.SignatureMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.POST("/refreshToken", r.administratorHandler.RefreshToken)

	v1 := api.Group("/v1")
	v1.POST("/administrators/login", r.administratorHandler.Login)

	// Both guards share the /api/v1 prefix, so they are attached per route.
	admin := r.adminAuth.Authenticate
	v1.GET("/administrators/me", r.administratorHandler.GetProfile, admin)
	v1.PUT("/administrators/:id", r.administratorHandler.UpdateAdministrator, admin)
	v1.PUT("/administrators/:id/changePassword", r.administratorHandler.ChangePassword, admin)

	v1.POST("/apps", r.appHandler.CreateApp, admin)
	v1.GET("/apps", r.appHandler.ListApps, admin)
	v1.GET("/apps/:id", r.appHandler.GetApp, admin)
	v1.PUT("/apps/:id", r.appHandler.UpdateApp, admin)
	v1.DELETE("/apps/:id", r.appHandler.DeleteApp, admin)
	v1.GET("/apps/:id/notifications", r.notificationHandler.ListAppNotifications, admin)

	v1.POST("/notifications/admin", r.notificationHandler.AdminSend, admin)
	v1.GET("/notifications/:id", r.notificationHandler.GetNotification, admin)

	signed := r.signature.Verify
	v1.POST("/users/ensure", r.userHandler.EnsureUser, signed)
	v1.POST("/users/unEnsure", r.userHandler.UnEnsureUser, signed)
	v1.POST("/notifications", r.notificationHandler.Send, signed)
}
