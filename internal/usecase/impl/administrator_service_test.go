package impl

import (
	"context"
	"testing"

	"pushgate/internal/domain/entity"
	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/domain/service"
	mockRepo "pushgate/internal/mocks/repository"
	mockService "pushgate/internal/mocks/service"
	"pushgate/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	srv    usecase.AdministratorUsecase
	repo   *mockRepo.MockAdministratorRepository
	hasher *mockService.MockPasswordHasher
	tokens *mockService.MockTokenService
}

func newAdminFixture(t *testing.T) *adminFixture {
	repo := mockRepo.NewMockAdministratorRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return &adminFixture{
		srv: NewAdministratorService(AdministratorServiceParams{
			AdminRepo:    repo,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       discardLogger(),
		}),
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func testAdministrator(enabled bool) *entity.Administrator {
	return &entity.Administrator{
		ID:           uuid.New(),
		Username:     "root",
		EmailAddress: "root@example.com",
		PasswordHash: "hashed",
		Enabled:      enabled,
	}
}

func claimsFor(id uuid.UUID, tokenType service.TokenType) *service.Claims {
	return &service.Claims{
		Type:             tokenType,
		Role:             entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
	}
}

func TestAdministratorService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores the new refresh token", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(admin, nil)
		f.hasher.EXPECT().Check("secret", "hashed").Return(true)
		f.tokens.EXPECT().IssueAccess(admin.ID).Return("access-1", nil)
		f.tokens.EXPECT().IssueRefresh(admin.ID).Return("refresh-1", nil)
		f.repo.EXPECT().UpdateRefreshToken(ctx, admin.ID, mock.MatchedBy(func(token *string) bool {
			return token != nil && *token == "refresh-1"
		})).Return(nil)

		out, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "root", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, admin.ID, out.ID)
		assert.Equal(t, "root@example.com", out.EmailAddress)
		assert.Equal(t, "access-1", out.AccessToken)
		assert.Equal(t, "refresh-1", out.RefreshToken)
	})

	t.Run("unknown username", func(t *testing.T) {
		f := newAdminFixture(t)
		f.repo.EXPECT().FindAdministratorByUsername(ctx, "ghost").Return(nil, repository.ErrAdministratorNotFound)

		_, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("disabled account is indistinguishable from a bad password", func(t *testing.T) {
		f := newAdminFixture(t)
		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(testAdministrator(false), nil)

		_, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "root", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAdminFixture(t)
		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(testAdministrator(true), nil)
		f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "root", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure is not reported as bad credentials", func(t *testing.T) {
		f := newAdminFixture(t)
		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(nil, errors.New("connection refused"))

		_, err := f.srv.Login(ctx, &usecase.LoginInput{Username: "root", Password: "secret"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAdministratorService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("current refresh token yields a new access token", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)
		current := "refresh-2"
		admin.RefreshToken = &current

		f.tokens.EXPECT().ValidateToken("refresh-2").Return(claimsFor(admin.ID, service.TokenTypeRefresh), nil)
		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)
		f.tokens.EXPECT().IssueAccess(admin.ID).Return("access-2", nil)

		out, err := f.srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-2"})
		require.NoError(t, err)
		assert.Equal(t, "access-2", out.AccessToken)
	})

	t.Run("token superseded by a later login is rejected", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)
		current := "refresh-2"
		admin.RefreshToken = &current

		f.tokens.EXPECT().ValidateToken("refresh-1").Return(claimsFor(admin.ID, service.TokenTypeRefresh), nil)
		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)

		_, err := f.srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.tokens.EXPECT().ValidateToken("access-1").Return(claimsFor(admin.ID, service.TokenTypeAccess), nil)

		_, err := f.srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access-1"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("logged out administrator", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.tokens.EXPECT().ValidateToken("refresh-1").Return(claimsFor(admin.ID, service.TokenTypeRefresh), nil)
		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)

		_, err := f.srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAdministratorService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid access token", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.tokens.EXPECT().ValidateToken("access-1").Return(claimsFor(admin.ID, service.TokenTypeAccess), nil)
		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)

		got, err := f.srv.Authenticate(ctx, "access-1")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, got.ID)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newAdminFixture(t)

		_, err := f.srv.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAdminFixture(t)
		f.tokens.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is malformed"))

		_, err := f.srv.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		f := newAdminFixture(t)
		f.tokens.EXPECT().ValidateToken("refresh-1").Return(claimsFor(uuid.New(), service.TokenTypeRefresh), nil)

		_, err := f.srv.Authenticate(ctx, "refresh-1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})

	t.Run("disabled administrator", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(false)

		f.tokens.EXPECT().ValidateToken("access-1").Return(claimsFor(admin.ID, service.TokenTypeAccess), nil)
		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)

		_, err := f.srv.Authenticate(ctx, "access-1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	})
}

func TestAdministratorService_UpdateAdministrator(t *testing.T) {
	ctx := context.Background()
	name := "admin2"

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		f := newAdminFixture(t)
		id := uuid.New()
		f.repo.EXPECT().UpdateAdministrator(ctx, id, &entity.AdministratorUpdate{Username: &name}).
			Return(nil, repository.ErrDuplicateAdministrator)

		_, err := f.srv.UpdateAdministrator(ctx, id, &usecase.UpdateAdministratorInput{Username: &name})
		requireErrorCode(t, err, "CONFLICT")
	})

	t.Run("unknown administrator", func(t *testing.T) {
		f := newAdminFixture(t)
		id := uuid.New()
		f.repo.EXPECT().UpdateAdministrator(ctx, id, mock.Anything).Return(nil, repository.ErrAdministratorNotFound)

		_, err := f.srv.UpdateAdministrator(ctx, id, &usecase.UpdateAdministratorInput{Username: &name})
		assert.ErrorIs(t, err, domainerrors.ErrAdministratorNotFound)
	})
}

func TestAdministratorService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)
		f.hasher.EXPECT().Check("old-secret", "hashed").Return(true)
		f.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
		f.repo.EXPECT().UpdatePasswordHash(ctx, admin.ID, "new-hash").Return(nil)

		err := f.srv.ChangePassword(ctx, admin.ID, &usecase.ChangePasswordInput{
			Password:          "old-secret",
			PasswordNew:       "new-secret",
			PasswordNewVerify: "new-secret",
		})
		require.NoError(t, err)
	})

	t.Run("verification mismatch", func(t *testing.T) {
		f := newAdminFixture(t)

		err := f.srv.ChangePassword(ctx, uuid.New(), &usecase.ChangePasswordInput{
			Password:          "old-secret",
			PasswordNew:       "new-secret",
			PasswordNewVerify: "new-secreT",
		})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("too short", func(t *testing.T) {
		f := newAdminFixture(t)

		err := f.srv.ChangePassword(ctx, uuid.New(), &usecase.ChangePasswordInput{
			Password:          "old-secret",
			PasswordNew:       "abc",
			PasswordNewVerify: "abc",
		})
		requireErrorCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("current password incorrect", func(t *testing.T) {
		f := newAdminFixture(t)
		admin := testAdministrator(true)

		f.repo.EXPECT().FindAdministratorByID(ctx, admin.ID).Return(admin, nil)
		f.hasher.EXPECT().Check("not-it", "hashed").Return(false)

		err := f.srv.ChangePassword(ctx, admin.ID, &usecase.ChangePasswordInput{
			Password:          "not-it",
			PasswordNew:       "new-secret",
			PasswordNewVerify: "new-secret",
		})
		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	})
}

func TestAdministratorService_EnsureBootstrapAdministrator(t *testing.T) {
	ctx := context.Background()
	input := &usecase.BootstrapAdministratorInput{
		Username:     "root",
		EmailAddress: "root@example.com",
		Password:     "changeme",
	}

	t.Run("creates the account once", func(t *testing.T) {
		f := newAdminFixture(t)

		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(nil, repository.ErrAdministratorNotFound)
		f.hasher.EXPECT().Hash("changeme").Return("hashed", nil)
		f.repo.EXPECT().CreateAdministrator(ctx, mock.MatchedBy(func(admin *entity.Administrator) bool {
			return admin.Username == "root" && admin.PasswordHash == "hashed" && admin.Enabled
		})).Return(nil)

		require.NoError(t, f.srv.EnsureBootstrapAdministrator(ctx, input))
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		f := newAdminFixture(t)
		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(testAdministrator(true), nil)

		require.NoError(t, f.srv.EnsureBootstrapAdministrator(ctx, input))
	})

	t.Run("lost creation race is not an error", func(t *testing.T) {
		f := newAdminFixture(t)

		f.repo.EXPECT().FindAdministratorByUsername(ctx, "root").Return(nil, repository.ErrAdministratorNotFound)
		f.hasher.EXPECT().Hash("changeme").Return("hashed", nil)
		f.repo.EXPECT().CreateAdministrator(ctx, mock.Anything).Return(repository.ErrDuplicateAdministrator)

		require.NoError(t, f.srv.EnsureBootstrapAdministrator(ctx, input))
	})
}
