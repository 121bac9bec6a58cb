package impl

import (
	"context"
	"log/slog"
	"strings"

	"chorechart/config"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/policy"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rewardService struct {
	txManager repository.TransactionManager
	events    eventNotifier
	clock     clock
	logger    *slog.Logger
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) (usecase.RewardUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &rewardService{
		txManager: params.TxManager,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		clock:     clk,
		logger:    params.Logger,
	}, nil
}

func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRewards returns the shared reward catalog. Every signed-in profile sees all rewards.
func (srv *rewardService) ListRewards(ctx context.Context, actorID uuid.UUID) ([]*entity.Reward, error) {
	var rewards []*entity.Reward

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID); err != nil {
			return err
		}

		var err error
		rewards, err = repoFactory.NewRewardRepository().List(ctx)

		return errors.Wrap(err, "failed to list rewards")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	return rewards, nil
}

func (srv *rewardService) GetReward(ctx context.Context, actorID, rewardID uuid.UUID) (*entity.Reward, error) {
	var reward *entity.Reward

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID); err != nil {
			return err
		}

		var err error
		reward, err = findReward(ctx, repoFactory.NewRewardRepository(), rewardID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reward")
	}

	return reward, nil
}

func (srv *rewardService) CreateReward(ctx context.Context, actorID uuid.UUID, input *usecase.RewardInput) (*entity.Reward, error) {
	reward, err := buildReward(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}
		if err := policy.CheckManageRewards(actor); err != nil {
			return errors.WithStack(err)
		}

		reward.CreatedBy = actor.UserID

		return errors.Wrap(repoFactory.NewRewardRepository().Create(ctx, reward), "failed to create reward")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reward")
	}

	srv.log(ctx).Info("Reward created", slog.Any("reward_id", reward.ID), slog.Int("cost", reward.Cost))

	return reward, nil
}

func (srv *rewardService) UpdateReward(ctx context.Context, actorID, rewardID uuid.UUID, input *usecase.RewardInput) (*entity.Reward, error) {
	changes, err := buildReward(input)
	if err != nil {
		return nil, err
	}

	var reward *entity.Reward

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rewardRepo := repoFactory.NewRewardRepository()

		actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}
		if err := policy.CheckManageRewards(actor); err != nil {
			return errors.WithStack(err)
		}

		current, err := findReward(ctx, rewardRepo, rewardID)
		if err != nil {
			return err
		}

		current.Title = changes.Title
		current.Description = changes.Description
		current.Cost = changes.Cost
		current.Icon = changes.Icon

		if err := rewardRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update reward")
		}
		reward = current

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update reward")
	}

	return reward, nil
}

// DeleteReward removes a reward. Existing redemptions keep their title and cost snapshot.
func (srv *rewardService) DeleteReward(ctx context.Context, actorID, rewardID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}
		if err := policy.CheckManageRewards(actor); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewRewardRepository().Delete(ctx, rewardID); err != nil {
			if errors.Is(err, repository.ErrRewardNotFound) {
				return errors.WithStack(domainerrors.ErrRewardNotFound)
			}

			return errors.Wrap(err, "failed to delete reward")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete reward")
	}

	srv.log(ctx).Info("Reward deleted", slog.Any("reward_id", rewardID))

	return nil
}

// RedeemReward debits the reward cost from the calling kid and opens a PENDING redemption.
func (srv *rewardService) RedeemReward(ctx context.Context, actorID, rewardID uuid.UUID) (*usecase.RedeemRewardOutput, error) {
	var (
		output *usecase.RedeemRewardOutput
		kid    *entity.Profile
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		reward, err := findReward(ctx, repoFactory.NewRewardRepository(), rewardID)
		if err != nil {
			return err
		}

		actor, err := lockActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}
		if err := policy.CheckRedeem(actor); err != nil {
			return errors.WithStack(err)
		}

		if !actor.CanAfford(reward.Cost) {
			return errors.WithStack(domainerrors.ErrInsufficientPoints)
		}

		balance, err := debit(ctx, profileRepo, actor, reward.Cost)
		if err != nil {
			return err
		}

		redemption := &entity.Redemption{
			UserID:      actor.UserID,
			RewardID:    reward.ID,
			RewardTitle: reward.Title,
			Cost:        reward.Cost,
			Status:      entity.RedemptionPending,
			ClaimedAt:   srv.clock.now(),
		}
		if err := repoFactory.NewRedemptionRepository().Create(ctx, redemption); err != nil {
			return errors.Wrap(err, "failed to create redemption")
		}

		kid = actor
		output = &usecase.RedeemRewardOutput{Redemption: redemption, Points: balance}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to redeem reward")
	}

	srv.log(ctx).Info("Reward redeemed",
		slog.Any("reward_id", rewardID),
		slog.Any("redemption_id", output.Redemption.ID),
		slog.Int("balance", output.Points),
	)
	srv.events.publish(ctx, redemptionRequestedEvent(kid, output.Redemption))

	return output, nil
}

func findReward(ctx context.Context, rewardRepo repository.RewardRepository, rewardID uuid.UUID) (*entity.Reward, error) {
	reward, err := rewardRepo.FindByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRewardNotFound)
		}

		return nil, errors.Wrap(err, "failed to find reward")
	}

	return reward, nil
}

func buildReward(input *usecase.RewardInput) (*entity.Reward, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required"))
	}

	cost := entity.DefaultRewardCost
	if input.Cost != nil {
		cost = *input.Cost
	}
	if cost < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cost must not be negative"))
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = entity.DefaultRewardIcon
	}

	return &entity.Reward{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Cost:        cost,
		Icon:        icon,
	}, nil
}
