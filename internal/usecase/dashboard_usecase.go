package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// ParentDashboard aggregates what a parent reviews on the landing page.
type ParentDashboard struct {
	Parent             *entity.Profile
	Kids               []*entity.Profile
	RecentBehavior     []*entity.BehaviorLog
	PendingRedemptions []*entity.Redemption
}

// KidDashboard aggregates what a kid sees on the landing page.
type KidDashboard struct {
	Kid               *entity.Profile
	Chores            []*entity.Chore
	AffordableRewards []*entity.Reward
	Rewards           []*entity.Reward
	RecentRedemptions []*entity.Redemption
}

// ParentManagement lists what a parent edits on the chore and reward pages.
type ParentManagement struct {
	Parent  *entity.Profile
	Kids    []*entity.Profile
	Chores  []*entity.Chore
	Rewards []*entity.Reward
}

// DashboardUsecase builds the read models of the server-rendered pages.
type DashboardUsecase interface {
	GetActor(ctx context.Context, actorID uuid.UUID) (*entity.Profile, error)
	ParentDashboard(ctx context.Context, actorID uuid.UUID) (*ParentDashboard, error)
	KidDashboard(ctx context.Context, actorID uuid.UUID) (*KidDashboard, error)
	ParentManagement(ctx context.Context, actorID uuid.UUID) (*ParentManagement, error)
}
