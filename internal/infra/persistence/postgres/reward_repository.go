package postgres

import (
	"context"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{
		db: db,
	}
}

func (repo *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	rewardM := fromRewardDomain(reward)

	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("reward cost must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward")
	}

	reward.ID = rewardM.ID
	reward.CreatedAt = rewardM.CreatedAt
	reward.UpdatedAt = rewardM.UpdatedAt

	return nil
}

func (repo *rewardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by id")
	}

	return toRewardDomain(&rewardM), nil
}

func (repo *rewardRepository) Update(ctx context.Context, reward *entity.Reward) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("id = ?", reward.ID).
		Updates(map[string]any{
			"title":       reward.Title,
			"description": reward.Description,
			"cost":        reward.Cost,
			"icon":        reward.Icon,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("reward cost must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reward")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRewardNotFound
	}

	return nil
}

// Delete removes a reward. Existing redemptions keep their snapshot.
func (repo *rewardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RewardModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reward")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRewardNotFound
	}

	return nil
}

func (repo *rewardRepository) List(ctx context.Context) ([]*entity.Reward, error) {
	var rewardModels []*model.RewardModel

	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	rewards := make([]*entity.Reward, 0, len(rewardModels))
	for _, rewardM := range rewardModels {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// --- Mapper Functions ---

func toRewardDomain(data *model.RewardModel) *entity.Reward {
	return &entity.Reward{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Cost:        data.Cost,
		Icon:        data.Icon,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRewardDomain(data *entity.Reward) *model.RewardModel {
	return &model.RewardModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Cost:        data.Cost,
		Icon:        data.Icon,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
