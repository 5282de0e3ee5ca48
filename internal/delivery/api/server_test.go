package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pushgate/config"
	apimiddleware "pushgate/internal/delivery/api/middleware"
	"pushgate/internal/delivery/api/router"
	"pushgate/internal/delivery/api/router/handler"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/infra/metrics"
	mockUsecase "pushgate/internal/mocks/usecase"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminToken = "access-token"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixture struct {
	e              *echo.Echo
	adminUC        *mockUsecase.MockAdministratorUsecase
	appUC          *mockUsecase.MockAppUsecase
	userUC         *mockUsecase.MockUserUsecase
	tenantAuthUC   *mockUsecase.MockTenantAuthUsecase
	notificationUC *mockUsecase.MockNotificationUsecase
	admin          *entity.Administrator
	app            *entity.App
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	f := &apiFixture{
		adminUC:        mockUsecase.NewMockAdministratorUsecase(t),
		appUC:          mockUsecase.NewMockAppUsecase(t),
		userUC:         mockUsecase.NewMockUserUsecase(t),
		tenantAuthUC:   mockUsecase.NewMockTenantAuthUsecase(t),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		admin:          &entity.Administrator{ID: uuid.New(), Username: "root", Enabled: true},
		app:            &entity.App{ID: uuid.New(), Name: "shop", APIKey: "nk_0123", Enabled: true},
	}

	f.adminUC.EXPECT().Authenticate(mock.Anything, adminToken).Return(f.admin, nil).Maybe()
	f.adminUC.EXPECT().Authenticate(mock.Anything, mock.MatchedBy(func(token string) bool { return token != adminToken })).
		Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed")).Maybe()

	f.e = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		RouterParams: router.RouterParams{
			AdministratorHandler: handler.NewAdministratorHandler(handler.AdministratorHandlerParams{AdminUC: f.adminUC, Logger: logger}),
			AppHandler:           handler.NewAppHandler(handler.AppHandlerParams{AppUC: f.appUC, Logger: logger}),
			UserHandler:          handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
			NotificationHandler:  handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: f.notificationUC, Logger: logger}),
			AdminAuthMiddleware:  apimiddleware.NewAdminAuthMiddleware(apimiddleware.AdminAuthMiddlewareParams{AdminUC: f.adminUC, Logger: logger}),
			SignatureMiddleware:  apimiddleware.NewSignatureMiddleware(apimiddleware.SignatureMiddlewareParams{TenantAuthUC: f.tenantAuthUC, Logger: logger}),
			Config:               cfg,
		},
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f *apiFixture) asAdmin() map[string]string {
	return map[string]string{apimiddleware.HeaderAccessToken: adminToken}
}

func (f *apiFixture) signed() map[string]string {
	f.tenantAuthUC.EXPECT().VerifyRequest(mock.Anything, mock.Anything).Return(f.app, nil).Once()

	return map[string]string{
		apimiddleware.HeaderTimestamp: "1760000000000",
		apimiddleware.HeaderAPIKey:    f.app.APIKey,
		apimiddleware.HeaderSignature: "deadbeef",
	}
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAdministratorRoutes(t *testing.T) {
	t.Run("login is public", func(t *testing.T) {
		f := newAPIFixture(t)
		f.adminUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "root", Password: "secret"}).
			Return(&usecase.LoginOutput{ID: f.admin.ID, Username: "root", AccessToken: "a", RefreshToken: "r"}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/v1/administrators/login", `{"username":"root","password":"secret"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out usecase.LoginOutput
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, "a", out.AccessToken)
		assert.Equal(t, "r", out.RefreshToken)
	})

	t.Run("login without password fails validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/api/v1/administrators/login", `{"username":"root"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("refresh reads the refresh header", func(t *testing.T) {
		f := newAPIFixture(t)
		f.adminUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"}).
			Return(&usecase.RefreshTokenOutput{AccessToken: "access-2"}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/refreshToken", "", map[string]string{handler.HeaderRefreshToken: "refresh-1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"access-2"}`, string(env.Data))
	})

	t.Run("profile requires an access token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodGet, "/api/v1/administrators/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "AUTHENTICATION_FAILED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("profile returns the authenticated administrator", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodGet, "/api/v1/administrators/me", "", f.asAdmin())

		require.Equal(t, http.StatusOK, rec.Code)
		var admin entity.Administrator
		require.NoError(t, json.Unmarshal(env.Data, &admin))
		assert.Equal(t, f.admin.ID, admin.ID)
		assert.NotContains(t, string(env.Data), "passwordHash")
	})

	t.Run("change password passes all three fields", func(t *testing.T) {
		f := newAPIFixture(t)
		f.adminUC.EXPECT().ChangePassword(mock.Anything, f.admin.ID, &usecase.ChangePasswordInput{
			Password:          "old",
			PasswordNew:       "newpass",
			PasswordNewVerify: "other",
		}).Return(domainerrors.ErrPasswordMismatch)

		rec, env := f.do(t, http.MethodPut, "/api/v1/administrators/"+f.admin.ID.String()+"/changePassword",
			`{"password":"old","passwordNew":"newpass","passwordNewVerify":"other"}`, f.asAdmin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrPasswordMismatch.ErrorCode(), env.Error.Code)
	})
}

func TestAppRoutes(t *testing.T) {
	t.Run("create discloses the secret once", func(t *testing.T) {
		f := newAPIFixture(t)
		f.appUC.EXPECT().CreateApp(mock.Anything, mock.MatchedBy(func(in *usecase.CreateAppInput) bool {
			return in.Name == "shop" && json.Valid(in.FirebaseConfig)
		})).Return(&usecase.CreateAppOutput{App: f.app, APISecret: "s3cr3t"}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/v1/apps",
			`{"name":"shop","firebaseConfig":{"type":"service_account","project_id":"p"}}`, f.asAdmin())

		require.Equal(t, http.StatusCreated, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, "s3cr3t", out["apiSecret"])
		assert.Equal(t, f.app.APIKey, out["apiKey"])
	})

	t.Run("get never discloses the secret", func(t *testing.T) {
		f := newAPIFixture(t)
		f.app.APISecret = "s3cr3t"
		f.appUC.EXPECT().GetApp(mock.Anything, f.app.ID).Return(f.app, nil)

		rec, env := f.do(t, http.MethodGet, "/api/v1/apps/"+f.app.ID.String(), "", f.asAdmin())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, string(env.Data), "s3cr3t")
	})

	t.Run("create requires a firebase config", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/apps", `{"name":"shop"}`, f.asAdmin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodDelete, "/api/v1/apps/not-a-uuid", "", f.asAdmin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})

	t.Run("unknown app", func(t *testing.T) {
		f := newAPIFixture(t)
		f.appUC.EXPECT().DeleteApp(mock.Anything, f.app.ID).Return(domainerrors.ErrAppNotFound)

		rec, _ := f.do(t, http.MethodDelete, "/api/v1/apps/"+f.app.ID.String(), "", f.asAdmin())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("apps are not reachable with a tenant signature", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodGet, "/api/v1/apps", "", map[string]string{
			apimiddleware.HeaderAPIKey:    f.app.APIKey,
			apimiddleware.HeaderSignature: "deadbeef",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTenantRoutes(t *testing.T) {
	t.Run("ensure registers for the signing app", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().EnsureUser(mock.Anything, f.app.ID, &usecase.EnsureUserInput{
			Reference: "user-1",
			OSType:    entity.OSType("android"),
			Token:     "fcm-token",
		}).Return(&entity.User{Reference: "user-1", Enabled: true}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/users/ensure",
			`{"reference":"user-1","osType":"android","token":"fcm-token"}`, f.signed())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ensure rejects unknown os types", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/api/v1/users/ensure",
			`{"reference":"user-1","osType":"symbian","token":"fcm-token"}`, f.signed())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("unsigned requests never reach the handler", func(t *testing.T) {
		f := newAPIFixture(t)
		f.tenantAuthUC.EXPECT().VerifyRequest(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAuthenticationFailed.WrapMessage("missing signature headers"))

		rec, _ := f.do(t, http.MethodPost, "/api/v1/users/unEnsure", `{"reference":"user-1"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unEnsure", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().UnEnsureUser(mock.Anything, f.app.ID, "user-1").Return(nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/users/unEnsure", `{"reference":"user-1"}`, f.signed())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNotificationRoutes(t *testing.T) {
	t.Run("tenant send dispatches for the signing app", func(t *testing.T) {
		f := newAPIFixture(t)
		notificationID := uuid.New()
		f.notificationUC.EXPECT().Dispatch(mock.Anything, f.app.ID, mock.MatchedBy(func(req *usecase.DispatchRequest) bool {
			return req.Type == usecase.DispatchTypeSend &&
				len(req.References) == 1 && req.References[0] == "user-1" &&
				len(req.FirebaseData) == 1 && req.FirebaseData[0].Notification.Title == "hi"
		})).Return(&usecase.DispatchOutput{NotificationID: notificationID, Status: entity.NotificationStatusSent}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/v1/notifications",
			`{"type":"send","references":"user-1","firebaseData":{"notification":{"title":"hi"}}}`, f.signed())

		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, notificationID.String(), out["notificationId"])
		assert.Equal(t, "SENT", out["status"])
	})

	t.Run("unknown dispatch type", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/notifications",
			`{"type":"broadcast","firebaseData":{}}`, f.signed())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin send targets the named app", func(t *testing.T) {
		f := newAPIFixture(t)
		target := uuid.New()
		f.notificationUC.EXPECT().Dispatch(mock.Anything, target, mock.MatchedBy(func(req *usecase.DispatchRequest) bool {
			return req.Type == usecase.DispatchTypeSendEachForMulticast && req.ForAll
		})).Return(&usecase.DispatchOutput{NotificationID: uuid.New(), Status: entity.NotificationStatusPartial}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/notifications/admin",
			`{"appId":"`+target.String()+`","type":"sendEachForMulticast","forAll":true,"firebaseData":{"data":{"k":"v"}}}`,
			f.asAdmin())

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin send requires a valid app id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, env := f.do(t, http.MethodPost, "/api/v1/notifications/admin",
			`{"appId":"nope","type":"send","references":"a","firebaseData":{}}`, f.asAdmin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("dispatch failures keep their code", func(t *testing.T) {
		f := newAPIFixture(t)
		f.notificationUC.EXPECT().Dispatch(mock.Anything, f.app.ID, mock.Anything).
			Return(nil, domainerrors.ErrNoActiveTokens)

		rec, env := f.do(t, http.MethodPost, "/api/v1/notifications",
			`{"type":"send","references":"ghost","firebaseData":{}}`, f.signed())

		assert.Equal(t, domainerrors.ErrNoActiveTokens.HTTPCode(), rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrNoActiveTokens.ErrorCode(), env.Error.Code)
	})

	t.Run("history pages are bounded", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, _ := f.do(t, http.MethodGet, "/api/v1/apps/"+f.app.ID.String()+"/notifications?limit=101", "", f.asAdmin())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("history", func(t *testing.T) {
		f := newAPIFixture(t)
		f.notificationUC.EXPECT().ListNotifications(mock.Anything, f.app.ID, 20, 40).
			Return([]*entity.Notification{{ID: uuid.New(), AppID: f.app.ID, Status: entity.NotificationStatusSent}}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/v1/apps/"+f.app.ID.String()+"/notifications?limit=20&offset=40", "", f.asAdmin())

		require.Equal(t, http.StatusOK, rec.Code)
		var records []entity.Notification
		require.NoError(t, json.Unmarshal(env.Data, &records))
		assert.Len(t, records, 1)
	})
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/nothing-here", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	f.do(t, http.MethodGet, "/health", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pushgate_http_requests_total{code="200",method="GET",route="/health"} 1`)
}
