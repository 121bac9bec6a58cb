package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrChoreNotFound is returned when a chore does not exist.
var ErrChoreNotFound = errors.New("chore not found")

// ChoreRepository persists chore definitions.
type ChoreRepository interface {
	Create(ctx context.Context, chore *entity.Chore) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chore, error)
	Update(ctx context.Context, chore *entity.Chore) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByAssignees retrieves every chore assigned to any of the given users, newest first.
	ListByAssignees(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Chore, error)

	// ListActiveByAssignee retrieves the chores assigned to a user, leaving out DAILY chores
	// that already have a completion by that user on date (YYYY-MM-DD).
	ListActiveByAssignee(ctx context.Context, userID uuid.UUID, date string) ([]*entity.Chore, error)
}
