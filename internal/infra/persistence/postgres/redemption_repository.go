package postgres

import (
	"context"
	"time"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// redemptionRepository implements the repository.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{
		db: db,
	}
}

func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID

	return nil
}

func (repo *redemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption by id")
	}

	return toRedemptionDomain(&redemptionM), nil
}

func (repo *redemptionRepository) List(ctx context.Context, filter repository.RedemptionFilter) ([]*entity.Redemption, error) {
	query := repo.db.WithContext(ctx).Order("claimed_at DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var redemptionModels []*model.RedemptionModel
	if err := query.Find(&redemptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	redemptions := make([]*entity.Redemption, 0, len(redemptionModels))
	for _, redemptionM := range redemptionModels {
		redemptions = append(redemptions, toRedemptionDomain(redemptionM))
	}

	return redemptions, nil
}

// MarkProcessed only touches rows still PENDING, so concurrent decisions cannot both apply.
func (repo *redemptionRepository) MarkProcessed(
	ctx context.Context,
	id uuid.UUID,
	status entity.RedemptionStatus,
	processedAt time.Time,
	processedBy uuid.UUID,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("id = ? AND status = ?", id, string(entity.RedemptionPending)).
		Updates(map[string]any{
			"status":       string(status),
			"processed_at": processedAt,
			"processed_by": processedBy,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to process redemption")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check redemption")
	}
	if count == 0 {
		return repository.ErrRedemptionNotFound
	}

	return repository.ErrRedemptionNotPending
}

// --- Mapper Functions ---

func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	return &entity.Redemption{
		ID:          data.ID,
		UserID:      data.UserID,
		RewardID:    data.RewardID,
		RewardTitle: data.RewardTitle,
		Cost:        data.Cost,
		Status:      entity.RedemptionStatus(data.Status),
		ClaimedAt:   data.ClaimedAt,
		ProcessedAt: data.ProcessedAt,
		ProcessedBy: data.ProcessedBy,
	}
}

func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	status := data.Status
	if status == "" {
		status = entity.RedemptionPending
	}

	return &model.RedemptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		RewardID:    data.RewardID,
		RewardTitle: data.RewardTitle,
		Cost:        data.Cost,
		Status:      string(status),
		ClaimedAt:   data.ClaimedAt,
		ProcessedAt: data.ProcessedAt,
		ProcessedBy: data.ProcessedBy,
	}
}
