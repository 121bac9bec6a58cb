package impl

import (
	"context"
	"testing"
	"time"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRewardService(t *testing.T) (*rewardService, *txFixture) {
	fx := newTxFixture(t)
	uc, err := NewRewardService(RewardServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)
	srv := uc.(*rewardService)
	srv.clock = fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return srv, fx
}

func TestRewardService_RedeemReward_ExactBalance(t *testing.T) {
	srv, fx := createTestRewardService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 150)
	reward := &entity.Reward{ID: uuid.New(), Title: "Ice cream", Cost: 150}

	fx.rewards.EXPECT().FindByID(ctx, reward.ID).Return(reward, nil)
	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, 0).Return(nil)
	fx.redemptions.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Redemption) bool {
			return r.Status == entity.RedemptionPending && r.Cost == 150 && r.RewardTitle == "Ice cream" && r.UserID == kid.UserID
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
			return e.Type == service.EventRedemptionRequested
		})).
		Return(errors.New("broker down"))

	output, err := srv.RedeemReward(ctx, kid.UserID, reward.ID)

	require.NoError(t, err, "a failed publish never fails the redemption")
	assert.Equal(t, 0, output.Points)
	assert.Equal(t, entity.RedemptionPending, output.Redemption.Status)
}

func TestRewardService_RedeemReward_InsufficientPoints(t *testing.T) {
	srv, fx := createTestRewardService(t)

	ctx := context.Background()
	kid := newKid(nil, 149)
	reward := &entity.Reward{ID: uuid.New(), Cost: 150}

	fx.rewards.EXPECT().FindByID(ctx, reward.ID).Return(reward, nil)
	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)

	output, err := srv.RedeemReward(ctx, kid.UserID, reward.ID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientPoints))
	assert.Equal(t, 149, kid.Points)
}

func TestRewardService_RedeemReward_Errors(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	rewardID := uuid.New()

	t.Run("reward missing", func(t *testing.T) {
		srv, fx := createTestRewardService(t)
		fx.rewards.EXPECT().FindByID(ctx, rewardID).Return(nil, repository.ErrRewardNotFound)

		_, err := srv.RedeemReward(ctx, parent.UserID, rewardID)

		assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))
	})

	t.Run("parent cannot redeem", func(t *testing.T) {
		srv, fx := createTestRewardService(t)
		fx.rewards.EXPECT().FindByID(ctx, rewardID).Return(&entity.Reward{ID: rewardID, Cost: 1}, nil)
		fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, parent.UserID).Return(parent, nil)

		_, err := srv.RedeemReward(ctx, parent.UserID, rewardID)

		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	})
}

func TestRewardService_CreateReward(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)

	t.Run("parent with defaults", func(t *testing.T) {
		srv, fx := createTestRewardService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.rewards.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reward")).Return(nil)

		reward, err := srv.CreateReward(ctx, parent.UserID, &usecase.RewardInput{Title: "Movie night"})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultRewardCost, reward.Cost)
		assert.Equal(t, entity.DefaultRewardIcon, reward.Icon)
		assert.Equal(t, parent.UserID, reward.CreatedBy)
	})

	t.Run("kid is denied", func(t *testing.T) {
		srv, fx := createTestRewardService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)

		reward, err := srv.CreateReward(ctx, kid.UserID, &usecase.RewardInput{Title: "Candy"})

		assert.Nil(t, reward)
		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	})
}

func TestRewardService_UpdateReward(t *testing.T) {
	srv, fx := createTestRewardService(t)

	ctx := context.Background()
	parent := newParent()
	current := &entity.Reward{ID: uuid.New(), Title: "Old", Cost: 10, Icon: "🎁"}
	cost := 75

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.rewards.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
	fx.rewards.EXPECT().Update(ctx, current).Return(nil)

	reward, err := srv.UpdateReward(ctx, parent.UserID, current.ID, &usecase.RewardInput{Title: "New", Cost: &cost, Icon: "🎮"})

	require.NoError(t, err)
	assert.Equal(t, "New", reward.Title)
	assert.Equal(t, 75, reward.Cost)
	assert.Equal(t, "🎮", reward.Icon)
}

func TestRewardService_DeleteReward_NotFound(t *testing.T) {
	srv, fx := createTestRewardService(t)

	ctx := context.Background()
	parent := newParent()
	rewardID := uuid.New()

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.rewards.EXPECT().Delete(ctx, rewardID).Return(repository.ErrRewardNotFound)

	err := srv.DeleteReward(ctx, parent.UserID, rewardID)

	assert.True(t, errors.Is(err, domainerrors.ErrRewardNotFound))
}
