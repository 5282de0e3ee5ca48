package repository

import "context"

// TransactionManager runs usecase work atomically without exposing the driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction. Apps and administrators are
// left out: app writes go through the cached repository so its invalidation stays in one place.
type RepositoryFactory interface {
	UserRepo() UserRepository
	NotificationRepo() NotificationRepository
}
