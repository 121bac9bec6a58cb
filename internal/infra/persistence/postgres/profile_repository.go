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
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile for an existing user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("User").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("profile already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or parent reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid role or balance")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile of a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.find(repo.db.WithContext(ctx), userID)
}

// FindByUserIDForUpdate retrieves the profile with SELECT ... FOR UPDATE so concurrent balance
// changes queue behind the current transaction. The user row is loaded by a separate query
// because PostgreSQL rejects FOR UPDATE on the nullable side of an outer join.
func (repo *profileRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *profileRepository) find(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := db.Preload("User").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUserIDs retrieves the profiles of the given users.
func (repo *profileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return []*entity.Profile{}, nil
	}

	return repo.list(repo.db.WithContext(ctx).Where("profiles.user_id IN ?", userIDs))
}

// ListKidsByParent retrieves the KID profiles linked to a parent.
func (repo *profileRepository) ListKidsByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error) {
	return repo.list(repo.db.WithContext(ctx).
		Where("profiles.parent_id = ? AND profiles.role = ?", parentID, string(entity.RoleKid)))
}

func (repo *profileRepository) list(db *gorm.DB) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := db.Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Order("users.username ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// UpdatePoints stores a new balance.
func (repo *profileRepository) UpdatePoints(ctx context.Context, userID uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("points", points)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("points cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateParent links a profile to a parent, or unlinks it when parentID is nil.
func (repo *profileRepository) UpdateParent(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("parent_id", parentID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid parent reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update parent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel (with its user preloaded) to a domain Profile.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		Points:    data.Points,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.User != nil {
		profile.Username = data.User.Username
		profile.Name = data.User.Name
	}

	return profile
}

// fromProfileDomain converts a domain Profile to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:    data.UserID,
		Role:      string(data.Role),
		Points:    data.Points,
		ParentID:  data.ParentID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
