package firestore

import (
	"context"

	"flint/internal/domain/repository"

	fsLib "cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *fsLib.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds a specific Firestore transaction and hands out
// repository instances bound to it.
//
// Firestore requires every read of a transaction to happen before its first
// write; the use cases already order their work that way.
type firestoreRepositoryFactory struct {
	client *fsLib.Client
	tx     *fsLib.Transaction
}

// UserRepo returns a user repository bound to the transaction.
func (f *firestoreRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{docStore{client: f.client, tx: f.tx}}
}

// MatchRepo returns a match repository bound to the transaction.
func (f *firestoreRepositoryFactory) MatchRepo() repository.MatchRepository {
	return &matchRepository{docStore{client: f.client, tx: f.tx}}
}

// ReminderRepo returns a reminder repository bound to the transaction.
func (f *firestoreRepositoryFactory) ReminderRepo() repository.ReminderRepository {
	return &reminderRepository{docStore{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *fsLib.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// The client retries fn on contention, so fn must be safe to run more than
// once.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// RunTransaction returns fn's error verbatim when fn fails, so business
	// errors surface unchanged and errors.Is keeps working.
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *fsLib.Transaction) error {
		return fn(&firestoreRepositoryFactory{client: tm.client, tx: tx})
	})
}
