// Package badgerstore contains the concrete implementation of the persistence layer using an embedded Badger store.
//
// Entities are stored as JSON documents under type-prefixed keys. The package
// backs local development and tests; production deployments use Firestore.
package badgerstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"flint/config"
	"flint/internal/errors"

	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
)

// Key prefixes. Device keys nest the user ID so one prefix scan lists a
// user's devices.
const (
	prefixUser     = "user/"
	prefixMatch    = "match/"
	prefixReminder = "reminder/"
	prefixDevice   = "device/"
)

// Store bundles the Badger database with the in-process watch hub that
// substitutes for Firestore's snapshot listeners.
type Store struct {
	db  *badger.DB
	hub *watchHub
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the store from configuration and ties its shutdown to the Fx
// lifecycle.
func New(params Params) (*Store, error) {
	cfg := params.Config.Store.Badger
	if cfg == nil {
		return nil, errors.New("badger store selected but not configured")
	}

	store, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a Badger database at the configured path, or an in-memory one
// when cfg.InMemory is set.
func Open(cfg *config.BadgerConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	// Badger's own logger is chatty at INFO; all interesting failures
	// surface through the returned errors anyway.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger store")
	}

	return &Store{db: db, hub: newWatchHub()}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// kvStore routes reads and writes through the bound transaction when one is
// present, and opens short-lived transactions otherwise.
type kvStore struct {
	db  *badger.DB
	txn *badger.Txn
}

func (s *kvStore) view(fn func(txn *badger.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}

	return s.db.View(fn)
}

func (s *kvStore) update(fn func(txn *badger.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}

	return s.db.Update(fn)
}

// getJSON loads and decodes one document. Returns notFound when the key does
// not exist.
func (s *kvStore) getJSON(key []byte, out any, notFound error) error {
	return s.view(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return notFound
		}
		if err != nil {
			return errors.Wrapf(err, "failed to get %s", key)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

func (s *kvStore) setJSON(key []byte, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return s.update(func(txn *badger.Txn) error {
		return errors.Wrapf(txn.Set(key, payload), "failed to set %s", key)
	})
}

// createJSON is setJSON plus an existence check, so duplicate creates fail
// instead of silently overwriting.
func (s *kvStore) createJSON(key []byte, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return s.update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return errors.Errorf("document already exists: %s", key)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(err, "failed to check %s", key)
		}

		return errors.Wrapf(txn.Set(key, payload), "failed to set %s", key)
	})
}

func (s *kvStore) delete(key []byte) error {
	return s.update(func(txn *badger.Txn) error {
		return errors.Wrapf(txn.Delete(key), "failed to delete %s", key)
	})
}

// scanJSON iterates every document under prefix and decodes each value into
// a fresh instance produced by fn's caller.
func (s *kvStore) scanJSON(prefix []byte, fn func(val []byte) error) error {
	return s.view(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = prefix

		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return errors.Wrapf(err, "failed to scan %s", prefix)
			}
		}

		return nil
	})
}
