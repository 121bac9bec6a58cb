package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chorechart/config"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/repository"
	mockRepo "chorechart/internal/mocks/repository"
	mockSvc "chorechart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
		},
		Ledger: &config.LedgerConfig{Timezone: "UTC"},
	}
}

// txFixture wires a mocked transaction manager to a factory handing out mocked repositories.
type txFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	users       *mockRepo.MockUserRepository
	auths       *mockRepo.MockAuthRepository
	tokens      *mockRepo.MockRefreshTokenRepository
	profiles    *mockRepo.MockProfileRepository
	chores      *mockRepo.MockChoreRepository
	completions *mockRepo.MockCompletionRepository
	rewards     *mockRepo.MockRewardRepository
	redemptions *mockRepo.MockRedemptionRepository
	behavior    *mockRepo.MockBehaviorLogRepository
	devices     *mockRepo.MockDeviceRepository
	publisher   *mockSvc.MockEventPublisher
}

func newTxFixture(t *testing.T) *txFixture {
	fx := &txFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		users:       mockRepo.NewMockUserRepository(t),
		auths:       mockRepo.NewMockAuthRepository(t),
		tokens:      mockRepo.NewMockRefreshTokenRepository(t),
		profiles:    mockRepo.NewMockProfileRepository(t),
		chores:      mockRepo.NewMockChoreRepository(t),
		completions: mockRepo.NewMockCompletionRepository(t),
		rewards:     mockRepo.NewMockRewardRepository(t),
		redemptions: mockRepo.NewMockRedemptionRepository(t),
		behavior:    mockRepo.NewMockBehaviorLogRepository(t),
		devices:     mockRepo.NewMockDeviceRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()

	fx.factory.EXPECT().NewUserRepository().Return(fx.users).Maybe()
	fx.factory.EXPECT().NewAuthRepository().Return(fx.auths).Maybe()
	fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.tokens).Maybe()
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profiles).Maybe()
	fx.factory.EXPECT().NewChoreRepository().Return(fx.chores).Maybe()
	fx.factory.EXPECT().NewCompletionRepository().Return(fx.completions).Maybe()
	fx.factory.EXPECT().NewRewardRepository().Return(fx.rewards).Maybe()
	fx.factory.EXPECT().NewRedemptionRepository().Return(fx.redemptions).Maybe()
	fx.factory.EXPECT().NewBehaviorLogRepository().Return(fx.behavior).Maybe()
	fx.factory.EXPECT().NewDeviceRepository().Return(fx.devices).Maybe()

	return fx
}

// fixedClock pins the service clock to ts in UTC.
func fixedClock(ts time.Time) clock {
	return clock{now: func() time.Time { return ts }, loc: time.UTC}
}

func newParent() *entity.Profile {
	return &entity.Profile{UserID: uuid.New(), Username: "mom", Name: "Mom", Role: entity.RoleParent}
}

func newKid(parent *entity.Profile, points int) *entity.Profile {
	kid := &entity.Profile{UserID: uuid.New(), Username: "amy", Name: "Amy", Role: entity.RoleKid, Points: points}
	if parent != nil {
		kid.ParentID = &parent.UserID
	}

	return kid
}
