package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	mockUsecase "pushgate/internal/mocks/usecase"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSignatureMiddleware_Verify(t *testing.T) {
	app := &entity.App{ID: uuid.New(), Enabled: true}
	body := `{"type":"send","references":"a","firebaseData":{}}`

	t.Run("passes raw body and request uri, restores the body", func(t *testing.T) {
		tenantAuth := mockUsecase.NewMockTenantAuthUsecase(t)
		tenantAuth.EXPECT().VerifyRequest(mock.Anything, &usecase.SignedRequest{
			Timestamp:  "1760000000000",
			APIKey:     "nk_key",
			Signature:  "abc123",
			RequestURI: "/api/v1/notifications?dryRun=1",
			Body:       []byte(body),
		}).Return(app, nil)

		e := newEcho()
		guard := NewSignatureMiddleware(SignatureMiddlewareParams{TenantAuthUC: tenantAuth, Logger: discardLogger()})
		e.POST("/api/v1/notifications", func(c echo.Context) error {
			got, ok := deliverycontext.GetApp(c)
			require.True(t, ok)
			assert.Equal(t, app.ID, got.ID)

			replayed, err := io.ReadAll(c.Request().Body)
			require.NoError(t, err)
			assert.Equal(t, body, string(replayed))

			return c.NoContent(http.StatusNoContent)
		}, guard.Verify)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications?dryRun=1", strings.NewReader(body))
		req.Header.Set(HeaderTimestamp, "1760000000000")
		req.Header.Set(HeaderAPIKey, "nk_key")
		req.Header.Set(HeaderSignature, "abc123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejection never reaches the handler", func(t *testing.T) {
		tenantAuth := mockUsecase.NewMockTenantAuthUsecase(t)
		tenantAuth.EXPECT().VerifyRequest(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("signature verification failed"))

		e := newEcho()
		guard := NewSignatureMiddleware(SignatureMiddlewareParams{TenantAuthUC: tenantAuth, Logger: discardLogger()})
		e.POST("/api/v1/notifications", func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		}, guard.Verify)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", decodeError(t, rec).Error.Code)
	})
}

func TestAdminAuthMiddleware_Authenticate(t *testing.T) {
	admin := &entity.Administrator{ID: uuid.New(), Username: "root", Enabled: true}

	t.Run("attaches the administrator", func(t *testing.T) {
		adminUC := mockUsecase.NewMockAdministratorUsecase(t)
		adminUC.EXPECT().Authenticate(mock.Anything, "access-1").Return(admin, nil)

		e := newEcho()
		gate := NewAdminAuthMiddleware(AdminAuthMiddlewareParams{AdminUC: adminUC, Logger: discardLogger()})
		e.GET("/me", func(c echo.Context) error {
			got, ok := deliverycontext.GetAdministrator(c)
			require.True(t, ok)

			return c.String(http.StatusOK, got.Username)
		}, gate.Authenticate)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(HeaderAccessToken, "access-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "root", rec.Body.String())
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		adminUC := mockUsecase.NewMockAdministratorUsecase(t)
		adminUC.EXPECT().Authenticate(mock.Anything, "").
			Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed"))

		e := newEcho()
		gate := NewAdminAuthMiddleware(AdminAuthMiddlewareParams{AdminUC: adminUC, Logger: discardLogger()})
		e.GET("/me", func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		}, gate.Authenticate)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "validation failure keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("send requires exactly one reference")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "authentication failure hides details",
			err:        errors.WithStack(domainerrors.ErrAuthenticationFailed.WithDetails("stale timestamp")),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTHENTICATION_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is a generic 500",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}
