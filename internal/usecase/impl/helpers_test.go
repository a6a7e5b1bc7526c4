package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"flint/internal/domain/repository"
	mockRepo "flint/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a transaction manager mock that runs the closure against a
// factory handing out the given repository mocks.
type txFixture struct {
	Manager  *mockRepo.MockTransactionManager
	Factory  *mockRepo.MockRepositoryFactory
	User     *mockRepo.MockUserRepository
	Match    *mockRepo.MockMatchRepository
	Reminder *mockRepo.MockReminderRepository
}

func newTxFixture(t *testing.T) *txFixture {
	f := &txFixture{
		Manager:  mockRepo.NewMockTransactionManager(t),
		Factory:  mockRepo.NewMockRepositoryFactory(t),
		User:     mockRepo.NewMockUserRepository(t),
		Match:    mockRepo.NewMockMatchRepository(t),
		Reminder: mockRepo.NewMockReminderRepository(t),
	}

	f.Factory.EXPECT().UserRepo().Return(f.User).Maybe()
	f.Factory.EXPECT().MatchRepo().Return(f.Match).Maybe()
	f.Factory.EXPECT().ReminderRepo().Return(f.Reminder).Maybe()

	f.Manager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.Factory)
		}).Maybe()

	return f
}
