package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "pushgate/internal/domain/errors"
	"pushgate/internal/domain/repository"
	"pushgate/internal/errors"
	mockRepo "pushgate/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTxManager returns a transaction manager mock that runs fn against userRepo.
func newTxManager(t *testing.T, userRepo repository.UserRepository) *mockRepo.MockTransactionManager {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

// requireErrorCode asserts that err carries an application error with the given code.
func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an application error, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
