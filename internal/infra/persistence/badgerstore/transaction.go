package badgerstore

import (
	"context"

	"flint/internal/domain/repository"
	"flint/internal/errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Badger detects write conflicts at commit; a conflicted transaction is
// retried from scratch, mirroring what the Firestore client does for us.
const txMaxAttempts = 3

// badgerTransactionManager implements the domain's TransactionManager
// interface using Badger transactions.
type badgerTransactionManager struct {
	store *Store
}

// badgerRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds a specific Badger transaction and hands out repository
// instances bound to it. Match changes made inside the transaction are
// collected and only published to the watch hub after commit.
type badgerRepositoryFactory struct {
	txn     *badger.Txn
	pending *[]repository.MatchChange
}

// UserRepo returns a user repository bound to the transaction.
func (f *badgerRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{kvStore{txn: f.txn}}
}

// MatchRepo returns a match repository bound to the transaction.
func (f *badgerRepositoryFactory) MatchRepo() repository.MatchRepository {
	return &matchRepository{
		kvStore: kvStore{txn: f.txn},
		events: func(change repository.MatchChange) {
			*f.pending = append(*f.pending, change)
		},
	}
}

// ReminderRepo returns a reminder repository bound to the transaction.
func (f *badgerRepositoryFactory) ReminderRepo() repository.ReminderRepository {
	return &reminderRepository{kvStore{txn: f.txn}}
}

// NewTransactionManager is the constructor for badgerTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &badgerTransactionManager{store: store}
}

// Execute runs the given function within a single Badger transaction. fn may
// run more than once when the commit hits a write conflict.
func (tm *badgerTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 0; attempt < txMaxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "transaction canceled")
		}

		var pending []repository.MatchChange
		err = tm.store.db.Update(func(txn *badger.Txn) error {
			factory := &badgerRepositoryFactory{txn: txn, pending: &pending}

			return fn(factory)
		})
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			// Business errors surface unchanged so errors.Is keeps working.
			return err
		}

		for _, change := range pending {
			tm.store.hub.publish(change)
		}

		return nil
	}

	return errors.Wrap(err, "transaction kept conflicting")
}
