package repository

import "context"

// TransactionManager defines the interface for running store transactions.
// Every read-modify-write in the engine (like-set edits, match
// reconciliation, read-flag flips) runs through Execute so that concurrent
// callers racing on the same records cannot double-apply or miss an update.
type TransactionManager interface {
	// Execute runs fn within one store transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed. All
	// repository operations obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// MatchRepo returns a MatchRepository bound to the current transaction.
	MatchRepo() MatchRepository

	// ReminderRepo returns a ReminderRepository bound to the current transaction.
	ReminderRepo() ReminderRepository
}
