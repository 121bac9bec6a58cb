package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// ChoreInput carries the editable fields of a chore. Zero points, empty type and empty icon take the defaults.
type ChoreInput struct {
	Title       string    `json:"title" form:"title" validate:"required,max=200"`
	Description string    `json:"description" form:"description"`
	PointsValue *int      `json:"points_value" form:"points_value" validate:"omitempty,min=0"`
	AssignedTo  uuid.UUID `json:"assigned_to" form:"assigned_to" validate:"required"`
	ChoreType   string    `json:"chore_type" form:"chore_type" validate:"omitempty,oneof=ONE_TIME DAILY"`
	Icon        string    `json:"icon" form:"icon" validate:"max=16"`
}

// CompleteChoreOutput reports the completion and the kid's new balance.
type CompleteChoreOutput struct {
	Completion *entity.ChoreCompletion `json:"completion"`
	Points     int                     `json:"points"`
}

// ChoreUsecase defines chore management and the completion workflow.
type ChoreUsecase interface {
	// ListChores returns a kid's active chores, or the chores of a parent's linked kids.
	ListChores(ctx context.Context, actorID uuid.UUID) ([]*entity.Chore, error)
	GetChore(ctx context.Context, actorID, choreID uuid.UUID) (*entity.Chore, error)
	CreateChore(ctx context.Context, actorID uuid.UUID, input *ChoreInput) (*entity.Chore, error)
	UpdateChore(ctx context.Context, actorID, choreID uuid.UUID, input *ChoreInput) (*entity.Chore, error)
	DeleteChore(ctx context.Context, actorID, choreID uuid.UUID) error
	CompleteChore(ctx context.Context, actorID, choreID uuid.UUID) (*CompleteChoreOutput, error)
}
