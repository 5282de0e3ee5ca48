package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pushgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestAnnotateLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	c := newContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base.With(slog.String("request_id", "req-1")))))

	AnnotateLogger(c, base, slog.String("app_id", "app-1"))
	GetLoggerOrDefault(c.Request().Context(), base).Info("dispatched")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "app_id=app-1")
}

func TestAnnotateLogger_FallsBackOutsideRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	c := newContext()

	AnnotateLogger(c, base, slog.String("admin_id", "a-1"))
	GetLogger(c.Request().Context()).Info("profile")

	assert.Contains(t, buf.String(), "admin_id=a-1")
}

func TestPrincipals(t *testing.T) {
	c := newContext()

	_, ok := GetApp(c)
	assert.False(t, ok)
	_, ok = GetAdministrator(c)
	assert.False(t, ok)

	app := &entity.App{ID: uuid.New()}
	SetApp(c, app)
	got, ok := GetApp(c)
	require.True(t, ok)
	assert.Same(t, app, got)

	SetAdministrator(c, nil)
	_, ok = GetAdministrator(c)
	assert.False(t, ok)
}
