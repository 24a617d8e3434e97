package repository

import (
	"context"
)

// RepositoryFactory hands out repositories bound to one transaction scope.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	ListingRepo() ListingRepository
}

// TransactionManager runs a function inside a database transaction. The
// factory passed to fn yields repositories whose operations share that
// transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
