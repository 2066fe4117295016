package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error

	// Begin opens an explicit transaction for multi-step sequences spanning
	// several aggregates. The caller owns the boundary: it must Commit on
	// success and Rollback on failure — there is no automatic rollback.
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction is an explicit, caller-managed transaction boundary.
type Transaction interface {
	// Repos returns a factory whose repositories are bound to this transaction.
	Repos() RepositoryFactory

	// Commit atomically applies every mutation made through Repos.
	Commit() error

	// Rollback discards every mutation made through Repos.
	Rollback() error
}

// RepositoryFactory provides repository instances bound to one transaction
// (or to the root connection, for single-operation calls).
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Categories returns a CategoryRepository bound to the current transaction.
	Categories() CategoryRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository
}
