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

// behaviorLogRepository implements the repository.BehaviorLogRepository interface.
type behaviorLogRepository struct {
	db *gorm.DB
}

// NewBehaviorLogRepository is the constructor for behaviorLogRepository.
func NewBehaviorLogRepository(db *gorm.DB) repository.BehaviorLogRepository {
	return &behaviorLogRepository{
		db: db,
	}
}

func (repo *behaviorLogRepository) Create(ctx context.Context, log *entity.BehaviorLog) error {
	logM := &model.BehaviorLogModel{
		ID:           log.ID,
		UserID:       log.UserID,
		ActionType:   string(log.ActionType),
		PointsChange: log.PointsChange,
		Note:         log.Note,
		LoggedBy:     log.LoggedBy,
		CreatedAt:    log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid behavior action")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create behavior log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *behaviorLogRepository) ListByUsers(ctx context.Context, userIDs []uuid.UUID, limit int) ([]*entity.BehaviorLog, error) {
	if len(userIDs) == 0 {
		return []*entity.BehaviorLog{}, nil
	}

	query := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logModels []*model.BehaviorLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list behavior logs")
	}

	logs := make([]*entity.BehaviorLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, &entity.BehaviorLog{
			ID:           logM.ID,
			UserID:       logM.UserID,
			ActionType:   entity.BehaviorActionType(logM.ActionType),
			PointsChange: logM.PointsChange,
			Note:         logM.Note,
			LoggedBy:     logM.LoggedBy,
			CreatedAt:    logM.CreatedAt,
		})
	}

	return logs, nil
}
