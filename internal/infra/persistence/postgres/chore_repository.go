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

// choreRepository implements the repository.ChoreRepository interface.
type choreRepository struct {
	db *gorm.DB
}

// NewChoreRepository is the constructor for choreRepository.
func NewChoreRepository(db *gorm.DB) repository.ChoreRepository {
	return &choreRepository{
		db: db,
	}
}

// Create persists a new chore.
func (repo *choreRepository) Create(ctx context.Context, chore *entity.Chore) error {
	choreM := fromChoreDomain(chore)

	if err := repo.db.WithContext(ctx).Create(choreM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid assignee reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid chore type or points")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chore")
	}

	chore.ID = choreM.ID
	chore.CreatedAt = choreM.CreatedAt
	chore.UpdatedAt = choreM.UpdatedAt

	return nil
}

// FindByID retrieves a chore by its ID.
func (repo *choreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error) {
	var choreM model.ChoreModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&choreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find chore by id")
	}

	return toChoreDomain(&choreM), nil
}

// Update overwrites the editable fields of a chore.
func (repo *choreRepository) Update(ctx context.Context, chore *entity.Chore) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChoreModel{}).
		Where("id = ?", chore.ID).
		Updates(map[string]any{
			"title":        chore.Title,
			"description":  chore.Description,
			"points_value": chore.PointsValue,
			"assigned_to":  chore.AssignedTo,
			"chore_type":   string(chore.ChoreType),
			"icon":         chore.Icon,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid chore values")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update chore")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChoreNotFound
	}

	return nil
}

// Delete removes a chore. Its completions stay in the log.
func (repo *choreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChoreModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete chore")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChoreNotFound
	}

	return nil
}

// ListByAssignees retrieves every chore assigned to any of the given users.
func (repo *choreRepository) ListByAssignees(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Chore, error) {
	if len(userIDs) == 0 {
		return []*entity.Chore{}, nil
	}

	var choreModels []*model.ChoreModel
	if err := repo.db.WithContext(ctx).
		Where("assigned_to IN ?", userIDs).
		Order("created_at DESC").
		Find(&choreModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chores")
	}

	return toChoreDomains(choreModels), nil
}

// ListActiveByAssignee retrieves the chores still open for userID on date.
func (repo *choreRepository) ListActiveByAssignee(ctx context.Context, userID uuid.UUID, date string) ([]*entity.Chore, error) {
	done := repo.db.
		Model(&model.ChoreCompletionModel{}).
		Select("1").
		Where("chore_completions.chore_id = chores.id AND chore_completions.user_id = ? AND chore_completions.completed_on = ?", userID, date)

	var choreModels []*model.ChoreModel
	if err := repo.db.WithContext(ctx).
		Where("assigned_to = ?", userID).
		Where("NOT (chore_type = ? AND EXISTS (?))", string(entity.ChoreTypeDaily), done).
		Order("created_at DESC").
		Find(&choreModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active chores")
	}

	return toChoreDomains(choreModels), nil
}

// --- Mapper Functions ---

func toChoreDomain(data *model.ChoreModel) *entity.Chore {
	if data == nil {
		return nil
	}

	return &entity.Chore{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		PointsValue: data.PointsValue,
		AssignedTo:  data.AssignedTo,
		ChoreType:   entity.ChoreType(data.ChoreType),
		Icon:        data.Icon,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toChoreDomains(data []*model.ChoreModel) []*entity.Chore {
	chores := make([]*entity.Chore, 0, len(data))
	for _, choreM := range data {
		chores = append(chores, toChoreDomain(choreM))
	}

	return chores
}

func fromChoreDomain(data *entity.Chore) *model.ChoreModel {
	if data == nil {
		return nil
	}

	return &model.ChoreModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		PointsValue: data.PointsValue,
		AssignedTo:  data.AssignedTo,
		ChoreType:   string(data.ChoreType),
		Icon:        data.Icon,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
