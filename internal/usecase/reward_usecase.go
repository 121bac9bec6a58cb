package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// RewardInput carries the editable fields of a reward. A nil cost takes the default.
type RewardInput struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description"`
	Cost        *int   `json:"cost" form:"cost" validate:"omitempty,min=0"`
	Icon        string `json:"icon" form:"icon" validate:"max=16"`
}

// RedeemRewardOutput reports the pending redemption and the kid's new balance.
type RedeemRewardOutput struct {
	Redemption *entity.Redemption `json:"redemption"`
	Points     int                `json:"points"`
}

// RewardUsecase defines reward management and redemption requests.
type RewardUsecase interface {
	ListRewards(ctx context.Context, actorID uuid.UUID) ([]*entity.Reward, error)
	GetReward(ctx context.Context, actorID, rewardID uuid.UUID) (*entity.Reward, error)
	CreateReward(ctx context.Context, actorID uuid.UUID, input *RewardInput) (*entity.Reward, error)
	UpdateReward(ctx context.Context, actorID, rewardID uuid.UUID, input *RewardInput) (*entity.Reward, error)
	DeleteReward(ctx context.Context, actorID, rewardID uuid.UUID) error
	RedeemReward(ctx context.Context, actorID, rewardID uuid.UUID) (*RedeemRewardOutput, error)
}
