package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// RelinkProfileInput moves a kid under another parent, or unlinks it when ParentID is nil.
type RelinkProfileInput struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// LogBehaviorInput describes a manual point adjustment.
type LogBehaviorInput struct {
	ActionType string `json:"action_type" validate:"required"`
	Note       string `json:"note" validate:"max=500"`
}

// LogBehaviorOutput reports the adjustment and the resulting balance.
type LogBehaviorOutput struct {
	Log    *entity.BehaviorLog `json:"log"`
	Points int                 `json:"points"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// ListProfiles returns the profiles visible to the actor, the actor's own first.
	ListProfiles(ctx context.Context, actorID uuid.UUID) ([]*entity.Profile, error)
	GetMyProfile(ctx context.Context, actorID uuid.UUID) (*entity.Profile, error)
	GetProfile(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Profile, error)
	RelinkProfile(ctx context.Context, actorID, targetID uuid.UUID, input *RelinkProfileInput) (*entity.Profile, error)
	DeleteKid(ctx context.Context, actorID, targetID uuid.UUID) error
	LogBehavior(ctx context.Context, actorID, targetID uuid.UUID, input *LogBehaviorInput) (*LogBehaviorOutput, error)
	GetActivity(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Activity, error)
}
