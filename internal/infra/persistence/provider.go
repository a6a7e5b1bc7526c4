// Package persistence selects the configured document store and wires its
// repositories into the dependency graph.
package persistence

import (
	"log/slog"

	"flint/config"
	"flint/internal/domain/constants"
	"flint/internal/domain/repository"
	"flint/internal/errors"
	"flint/internal/infra/persistence/badgerstore"
	"flint/internal/infra/persistence/firestore"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result bundles everything the persistence layer provides. One provider
// keeps the backend choice in a single place.
type Result struct {
	fx.Out

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	MatchRepo    repository.MatchRepository
	ReminderRepo repository.ReminderRepository
	DeviceRepo   repository.DeviceRepository
	Watcher      repository.MatchWatcher
}

// New builds the store selected by store.provider.
func New(params Params) (Result, error) {
	if params.Config.Store == nil {
		return Result{}, errors.New("store is not configured")
	}

	switch provider := params.Config.Store.Provider; provider {
	case constants.StoreProviderFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager:    firestore.NewTransactionManager(client),
			UserRepo:     firestore.NewUserRepository(client),
			MatchRepo:    firestore.NewMatchRepository(client),
			ReminderRepo: firestore.NewReminderRepository(client),
			DeviceRepo:   firestore.NewDeviceRepository(client),
			Watcher:      firestore.NewMatchWatcher(client, params.Logger),
		}, nil

	case constants.StoreProviderBadger:
		store, err := badgerstore.New(badgerstore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager:    badgerstore.NewTransactionManager(store),
			UserRepo:     badgerstore.NewUserRepository(store),
			MatchRepo:    badgerstore.NewMatchRepository(store),
			ReminderRepo: badgerstore.NewReminderRepository(store),
			DeviceRepo:   badgerstore.NewDeviceRepository(store),
			Watcher:      badgerstore.NewMatchWatcher(store),
		}, nil

	default:
		return Result{}, errors.Errorf("unsupported store provider: %s", provider)
	}
}
