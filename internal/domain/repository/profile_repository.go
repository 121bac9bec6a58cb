package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists household profiles and their point balances.
type ProfileRepository interface {
	// Create persists a new profile. The user row must already exist.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByUserID retrieves the profile of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUserIDForUpdate retrieves the profile and locks its row until the transaction ends.
	// It must be called through a transaction-bound repository.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByUserIDs retrieves the profiles of the given users, ordered by username.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error)

	// ListKidsByParent retrieves the KID profiles linked to a parent, ordered by username.
	ListKidsByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Profile, error)

	// UpdatePoints stores a new balance.
	UpdatePoints(ctx context.Context, userID uuid.UUID, points int) error

	// UpdateParent links a profile to a parent, or unlinks it when parentID is nil.
	UpdateParent(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID) error
}
