package repository

import "context"

// TransactionManager defines the interface for running multi-step persistence
// operations atomically, without the use case layer depending on a specific
// storage backend.
type TransactionManager interface {
	// Execute runs a function within a storage transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory use the
	// same underlying transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// MenuRepo returns a MenuRepository bound to the current transaction.
	MenuRepo() MenuRepository
}
