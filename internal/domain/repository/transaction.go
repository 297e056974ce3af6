package repository

import "context"

// TransactionManager runs use case work inside one database transaction
// without the use case depending on GORM.
type TransactionManager interface {
	// Execute runs fn in a transaction. A returned error rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	PriceRepo() PriceRepository
	PriceReviewRepo() PriceReviewRepository
}
