package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRewardNotFound is returned when a reward does not exist.
var ErrRewardNotFound = errors.New("reward not found")

// RewardRepository persists reward definitions.
type RewardRepository interface {
	Create(ctx context.Context, reward *entity.Reward) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	Update(ctx context.Context, reward *entity.Reward) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all rewards, newest first.
	List(ctx context.Context) ([]*entity.Reward, error)
}
