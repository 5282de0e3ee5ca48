package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"pushgate/config"
	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/infra/auth"
	mockRepo "pushgate/internal/mocks/repository"
	"pushgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRequestURI = "/api/notification/send"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type tenantAuthFixture struct {
	srv  *tenantAuthService
	repo *mockRepo.MockAppRepository
	app  *entity.App
}

func newTenantAuthFixture(t *testing.T) *tenantAuthFixture {
	repo := mockRepo.NewMockAppRepository(t)

	srv := NewTenantAuthService(TenantAuthServiceParams{
		AppRepo: repo,
		Signer:  auth.NewHMACSigner(),
		Config:  &config.Config{Signature: &config.SignatureConfig{MaxClockSkew: 5 * time.Minute}},
		Logger:  discardLogger(),
	}).(*tenantAuthService)
	srv.now = func() time.Time { return fixedNow }

	return &tenantAuthFixture{
		srv:  srv,
		repo: repo,
		app: &entity.App{
			ID:        uuid.New(),
			APIKey:    "nk_0123456789abcdef0123456789abcdef",
			APISecret: "s3cret",
			Enabled:   true,
		},
	}
}

// signedRequest builds a request signed with secret at the given instant.
func signedRequest(secret string, at time.Time, body string) *usecase.SignedRequest {
	timestamp := strconv.FormatInt(at.UnixMilli(), 10)

	return &usecase.SignedRequest{
		Timestamp:  timestamp,
		APIKey:     "nk_0123456789abcdef0123456789abcdef",
		Signature:  auth.NewHMACSigner().Sign(secret, testRequestURI+timestamp+body),
		RequestURI: testRequestURI,
		Body:       []byte(body),
	}
}

func TestTenantAuthService_VerifyRequest_ClockSkew(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		offset  time.Duration
		wantErr bool
	}{
		{name: "now", offset: 0},
		{name: "4m59s in the past", offset: -(4*time.Minute + 59*time.Second)},
		{name: "4m59s in the future", offset: 4*time.Minute + 59*time.Second},
		{name: "5m01s in the past", offset: -(5*time.Minute + time.Second), wantErr: true},
		{name: "5m01s in the future", offset: 5*time.Minute + time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTenantAuthFixture(t)
			if !tt.wantErr {
				f.repo.EXPECT().FindAppByAPIKey(ctx, f.app.APIKey).Return(f.app, nil)
			}

			app, err := f.srv.VerifyRequest(ctx, signedRequest("s3cret", fixedNow.Add(tt.offset), `{"type":"send"}`))
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, f.app.ID, app.ID)
		})
	}
}

func TestTenantAuthService_VerifyRequest_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("tampered body", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		f.repo.EXPECT().FindAppByAPIKey(ctx, f.app.APIKey).Return(f.app, nil)

		req := signedRequest("s3cret", fixedNow, `{"type":"send"}`)
		req.Body = []byte(`{"type":"sendEach"}`)

		_, err := f.srv.VerifyRequest(ctx, req)
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("signed for another path", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		f.repo.EXPECT().FindAppByAPIKey(ctx, f.app.APIKey).Return(f.app, nil)

		req := signedRequest("s3cret", fixedNow, "")
		req.RequestURI = "/api/user/ensure"

		_, err := f.srv.VerifyRequest(ctx, req)
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		f.repo.EXPECT().FindAppByAPIKey(ctx, f.app.APIKey).Return(f.app, nil)

		_, err := f.srv.VerifyRequest(ctx, signedRequest("other", fixedNow, ""))
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("unknown and disabled keys fail the same way", func(t *testing.T) {
		unknown := newTenantAuthFixture(t)
		unknown.repo.EXPECT().FindAppByAPIKey(ctx, unknown.app.APIKey).Return(nil, repository.ErrAppNotFound)
		_, unknownErr := unknown.srv.VerifyRequest(ctx, signedRequest("s3cret", fixedNow, ""))

		disabled := newTenantAuthFixture(t)
		disabled.app.Enabled = false
		disabled.repo.EXPECT().FindAppByAPIKey(ctx, disabled.app.APIKey).Return(disabled.app, nil)
		_, disabledErr := disabled.srv.VerifyRequest(ctx, signedRequest("s3cret", fixedNow, ""))

		require.ErrorIs(t, unknownErr, domainerrors.ErrAuthenticationFailed)
		require.ErrorIs(t, disabledErr, domainerrors.ErrAuthenticationFailed)
		assert.Equal(t, unknownErr.Error(), disabledErr.Error())
	})

	t.Run("missing headers", func(t *testing.T) {
		for _, mutate := range []func(*usecase.SignedRequest){
			func(r *usecase.SignedRequest) { r.Timestamp = "" },
			func(r *usecase.SignedRequest) { r.APIKey = "" },
			func(r *usecase.SignedRequest) { r.Signature = "" },
		} {
			f := newTenantAuthFixture(t)
			req := signedRequest("s3cret", fixedNow, "")
			mutate(req)

			_, err := f.srv.VerifyRequest(ctx, req)
			assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
		}
	})

	t.Run("timestamp in seconds is stale", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		req := signedRequest("s3cret", fixedNow, "")
		req.Timestamp = strconv.FormatInt(fixedNow.Unix(), 10)

		_, err := f.srv.VerifyRequest(ctx, req)
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		req := signedRequest("s3cret", fixedNow, "")
		req.Timestamp = "yesterday"

		_, err := f.srv.VerifyRequest(ctx, req)
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("storage failure is not an authentication failure", func(t *testing.T) {
		f := newTenantAuthFixture(t)
		f.repo.EXPECT().FindAppByAPIKey(ctx, f.app.APIKey).Return(nil, errors.New("connection refused"))

		_, err := f.srv.VerifyRequest(ctx, signedRequest("s3cret", fixedNow, ""))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})
}

func TestNewTenantAuthService_DefaultSkew(t *testing.T) {
	srv := NewTenantAuthService(TenantAuthServiceParams{Logger: discardLogger()}).(*tenantAuthService)
	assert.Equal(t, defaultMaxClockSkew, srv.maxClockSkew)
}
