// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"flint/config"
	"flint/internal/errors"

	fsLib "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. Document IDs are the entity IDs, so point lookups never
// need a query.
const (
	colUsers     = "users"
	colMatches   = "matches"
	colReminders = "reminders"
	colDevices   = "devices"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client
func New(params Params) (*fsLib.Client, error) {
	cfg := params.Config.Store.Firestore
	if cfg == nil {
		return nil, errors.New("firestore store selected but not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := fsLib.NewClient(context.Background(), cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// docStore routes reads and writes through the bound transaction when one is
// present, and straight to the client otherwise. Repositories embed it so the
// same code serves both transactional and standalone calls.
type docStore struct {
	client *fsLib.Client
	tx     *fsLib.Transaction
}

func (s *docStore) get(ctx context.Context, ref *fsLib.DocumentRef) (*fsLib.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s *docStore) create(ctx context.Context, ref *fsLib.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Create(ref, data)
	}

	_, err := ref.Create(ctx, data)

	return err
}

func (s *docStore) set(ctx context.Context, ref *fsLib.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Set(ref, data)
	}

	_, err := ref.Set(ctx, data)

	return err
}

func (s *docStore) del(ctx context.Context, ref *fsLib.DocumentRef) error {
	if s.tx != nil {
		return s.tx.Delete(ref)
	}

	_, err := ref.Delete(ctx)

	return err
}

func (s *docStore) documents(ctx context.Context, query fsLib.Query) *fsLib.DocumentIterator {
	if s.tx != nil {
		return s.tx.Documents(query)
	}

	return query.Documents(ctx)
}
