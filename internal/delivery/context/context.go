// Package context carries request-scoped values between the echo layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	KeyRequestID     ContextKey = "request_id"
	KeyLogger        ContextKey = "logger"
	KeyAdministrator ContextKey = "administrator"
	KeyApp           ContextKey = "app"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request-id middleware. Outside that middleware a
// fresh id is returned so error envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// AnnotateLogger extends the request-scoped logger with args, so that everything logged further
// down the request (usecases, repositories) carries them.
func AnnotateLogger(c echo.Context, fallback *slog.Logger, args ...any) {
	req := c.Request()
	ctx := req.Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(args...)
	c.SetRequest(req.WithContext(WithLogger(ctx, logger)))
}

// SetAdministrator stores the administrator resolved by the session gate.
func SetAdministrator(c echo.Context, admin *entity.Administrator) {
	c.Set(string(KeyAdministrator), admin)
}

func GetAdministrator(c echo.Context) (*entity.Administrator, bool) {
	admin, ok := c.Get(string(KeyAdministrator)).(*entity.Administrator)

	return admin, ok && admin != nil
}

// SetApp stores the app whose request signature was verified.
func SetApp(c echo.Context, app *entity.App) {
	c.Set(string(KeyApp), app)
}

func GetApp(c echo.Context) (*entity.App, bool) {
	app, ok := c.Get(string(KeyApp)).(*entity.App)

	return app, ok && app != nil
}
