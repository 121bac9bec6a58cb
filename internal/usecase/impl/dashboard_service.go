package impl

import (
	"context"
	"log/slog"

	"chorechart/config"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/policy"
	"chorechart/internal/domain/repository"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	recentBehaviorLimit    = 20
	recentRedemptionsLimit = 10
)

type dashboardService struct {
	txManager repository.TransactionManager
	clock     clock
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) (usecase.DashboardUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &dashboardService{
		txManager: params.TxManager,
		clock:     clk,
		logger:    params.Logger,
	}, nil
}

func (srv *dashboardService) GetActor(ctx context.Context, actorID uuid.UUID) (*entity.Profile, error) {
	var actor *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		actor, err = loadActor(ctx, repoFactory.NewProfileRepository(), actorID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load actor")
	}

	return actor, nil
}

// ParentDashboard lists the linked kids, their recent behavior and the global review queue.
func (srv *dashboardService) ParentDashboard(ctx context.Context, actorID uuid.UUID) (*usecase.ParentDashboard, error) {
	var dashboard *usecase.ParentDashboard

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		parent, kids, err := loadParentAndKids(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}

		behavior, err := repoFactory.NewBehaviorLogRepository().ListByUsers(ctx, profileIDs(kids), recentBehaviorLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list behavior logs")
		}

		pending, err := repoFactory.NewRedemptionRepository().List(ctx, repository.RedemptionFilter{
			Status: entity.RedemptionPending,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list pending redemptions")
		}

		dashboard = &usecase.ParentDashboard{
			Parent:             parent,
			Kids:               kids,
			RecentBehavior:     behavior,
			PendingRedemptions: pending,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parent dashboard")
	}

	return dashboard, nil
}

// KidDashboard lists today's open chores, the reward catalog and the kid's recent redemptions.
func (srv *dashboardService) KidDashboard(ctx context.Context, actorID uuid.UUID) (*usecase.KidDashboard, error) {
	var dashboard *usecase.KidDashboard

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		kid, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}
		if err := policy.RequireKid(kid); err != nil {
			return errors.WithStack(err)
		}

		chores, err := repoFactory.NewChoreRepository().ListActiveByAssignee(ctx, kid.UserID, srv.clock.dateOf(srv.clock.now()))
		if err != nil {
			return errors.Wrap(err, "failed to list active chores")
		}

		rewards, err := repoFactory.NewRewardRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list rewards")
		}

		affordable := make([]*entity.Reward, 0, len(rewards))
		for _, reward := range rewards {
			if kid.CanAfford(reward.Cost) {
				affordable = append(affordable, reward)
			}
		}

		redemptions, err := repoFactory.NewRedemptionRepository().List(ctx, repository.RedemptionFilter{
			UserID: &kid.UserID,
			Limit:  recentRedemptionsLimit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list redemptions")
		}

		dashboard = &usecase.KidDashboard{
			Kid:               kid,
			Chores:            chores,
			AffordableRewards: affordable,
			Rewards:           rewards,
			RecentRedemptions: redemptions,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build kid dashboard")
	}

	return dashboard, nil
}

// ParentManagement lists the chores of the linked kids and the reward catalog for editing.
func (srv *dashboardService) ParentManagement(ctx context.Context, actorID uuid.UUID) (*usecase.ParentManagement, error) {
	var management *usecase.ParentManagement

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		parent, kids, err := loadParentAndKids(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}

		chores, err := repoFactory.NewChoreRepository().ListByAssignees(ctx, profileIDs(kids))
		if err != nil {
			return errors.Wrap(err, "failed to list chores")
		}

		rewards, err := repoFactory.NewRewardRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list rewards")
		}

		management = &usecase.ParentManagement{
			Parent:  parent,
			Kids:    kids,
			Chores:  chores,
			Rewards: rewards,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parent management view")
	}

	return management, nil
}

func loadParentAndKids(ctx context.Context, profileRepo repository.ProfileRepository, actorID uuid.UUID) (*entity.Profile, []*entity.Profile, error) {
	parent, err := loadActor(ctx, profileRepo, actorID)
	if err != nil {
		return nil, nil, err
	}
	if err := policy.RequireParent(parent); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	kids, err := profileRepo.ListKidsByParent(ctx, parent.UserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list kids")
	}

	return parent, kids, nil
}
