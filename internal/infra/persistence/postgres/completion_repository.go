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

// completionRepository implements the repository.CompletionRepository interface.
type completionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository is the constructor for completionRepository.
func NewCompletionRepository(db *gorm.DB) repository.CompletionRepository {
	return &completionRepository{
		db: db,
	}
}

// Create appends a completion; the partial unique index rejects a second DAILY completion on one date.
func (repo *completionRepository) Create(ctx context.Context, completion *entity.ChoreCompletion) error {
	completionM := fromCompletionDomain(completion)

	if err := repo.db.WithContext(ctx).Create(completionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCompletion
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chore completion")
	}

	completion.ID = completionM.ID

	return nil
}

// ExistsOn reports whether the user completed the chore as a DAILY chore on date.
func (repo *completionRepository) ExistsOn(ctx context.Context, userID, choreID uuid.UUID, date string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ChoreCompletionModel{}).
		Where("user_id = ? AND chore_id = ? AND completed_on = ? AND chore_type = ?", userID, choreID, date, string(entity.ChoreTypeDaily)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check chore completion")
	}

	return count > 0, nil
}

// ListByUser retrieves a user's completions, newest first.
func (repo *completionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ChoreCompletion, error) {
	var completionModels []*model.ChoreCompletionModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&completionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chore completions")
	}

	completions := make([]*entity.ChoreCompletion, 0, len(completionModels))
	for _, completionM := range completionModels {
		completions = append(completions, toCompletionDomain(completionM))
	}

	return completions, nil
}

// --- Mapper Functions ---

func toCompletionDomain(data *model.ChoreCompletionModel) *entity.ChoreCompletion {
	return &entity.ChoreCompletion{
		ID:           data.ID,
		UserID:       data.UserID,
		ChoreID:      data.ChoreID,
		ChoreTitle:   data.ChoreTitle,
		PointsEarned: data.PointsEarned,
		ChoreType:    entity.ChoreType(data.ChoreType),
		CompletedAt:  data.CompletedAt,
		CompletedOn:  data.CompletedOn,
	}
}

func fromCompletionDomain(data *entity.ChoreCompletion) *model.ChoreCompletionModel {
	return &model.ChoreCompletionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ChoreID:      data.ChoreID,
		ChoreTitle:   data.ChoreTitle,
		PointsEarned: data.PointsEarned,
		CompletedAt:  data.CompletedAt,
		CompletedOn:  data.CompletedOn,
	}
}
