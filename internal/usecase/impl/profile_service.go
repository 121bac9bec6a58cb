// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	events    eventNotifier
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProfiles returns the actor's own profile followed by the kids linked to a parent.
func (srv *profileService) ListProfiles(ctx context.Context, actorID uuid.UUID) ([]*entity.Profile, error) {
	var profiles []*entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}
		profiles = []*entity.Profile{actor}

		if !actor.IsParent() {
			return nil
		}

		kids, err := profileRepo.ListKidsByParent(ctx, actor.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list kids")
		}
		profiles = append(profiles, kids...)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func (srv *profileService) GetMyProfile(ctx context.Context, actorID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = loadActor(ctx, repoFactory.NewProfileRepository(), actorID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// GetProfile returns target when the actor may see it. Invisible profiles look missing.
func (srv *profileService) GetProfile(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		_, profile, err = loadVisibleProfile(ctx, repoFactory.NewProfileRepository(), actorID, targetID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// RelinkProfile moves a kid under another parent, or unlinks it.
func (srv *profileService) RelinkProfile(
	ctx context.Context,
	actorID, targetID uuid.UUID,
	input *usecase.RelinkProfileInput,
) (*entity.Profile, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		target, err := findProfile(ctx, profileRepo, targetID)
		if err != nil {
			return err
		}

		var newParent *entity.Profile
		if input.ParentID != nil {
			newParent, err = profileRepo.FindByUserID(ctx, *input.ParentID)
			if err != nil {
				if errors.Is(err, repository.ErrProfileNotFound) {
					return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("parent_id does not exist"))
				}

				return errors.Wrap(err, "failed to find new parent")
			}
		}

		if err := policy.CheckRelink(actor, target, newParent); err != nil {
			return errors.WithStack(err)
		}

		if err := profileRepo.UpdateParent(ctx, target.UserID, input.ParentID); err != nil {
			return errors.Wrap(err, "failed to relink profile")
		}

		target.ParentID = input.ParentID
		profile = target

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to relink profile")
	}

	srv.log(ctx).Info("Profile relinked",
		slog.Any("user_id", targetID),
		slog.Any("parent_id", input.ParentID),
	)

	return profile, nil
}

// DeleteKid removes a linked kid's account together with its ledger history.
func (srv *profileService) DeleteKid(ctx context.Context, actorID, targetID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		target, err := findProfile(ctx, profileRepo, targetID)
		if err != nil {
			return err
		}

		if err := policy.CheckDeleteKid(actor, target); err != nil {
			return errors.WithStack(err)
		}

		if err := repoFactory.NewUserRepository().Delete(ctx, target.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to delete kid")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete kid")
	}

	srv.log(ctx).Info("Kid account deleted", slog.Any("user_id", targetID))

	return nil
}

// LogBehavior applies a fixed GOOD or BAD adjustment to a linked kid and records it.
func (srv *profileService) LogBehavior(
	ctx context.Context,
	actorID, targetID uuid.UUID,
	input *usecase.LogBehaviorInput,
) (*usecase.LogBehaviorOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	var output *usecase.LogBehaviorOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}
		if err := policy.RequireParent(actor); err != nil {
			return errors.WithStack(err)
		}

		target, err := lockProfile(ctx, profileRepo, targetID)
		if err != nil {
			return err
		}
		if err := policy.CheckLogBehavior(actor, target); err != nil {
			return errors.WithStack(err)
		}

		action := entity.BehaviorActionType(strings.ToUpper(strings.TrimSpace(input.ActionType)))
		if !action.IsValid() {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("action_type must be GOOD or BAD"))
		}

		var balance int
		if action == entity.BehaviorGood {
			balance, err = credit(ctx, profileRepo, target, entity.GoodBehaviorPoints)
		} else {
			balance, err = debit(ctx, profileRepo, target, entity.BadBehaviorPenalty)
		}
		if err != nil {
			return err
		}

		logEntry := &entity.BehaviorLog{
			UserID:       target.UserID,
			ActionType:   action,
			PointsChange: action.PointsChange(),
			Note:         strings.TrimSpace(input.Note),
			LoggedBy:     actor.UserID,
		}
		if err := repoFactory.NewBehaviorLogRepository().Create(ctx, logEntry); err != nil {
			return errors.Wrap(err, "failed to write behavior log")
		}

		output = &usecase.LogBehaviorOutput{Log: logEntry, Points: balance}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log behavior")
	}

	srv.log(ctx).Info("Behavior logged",
		slog.Any("user_id", targetID),
		slog.String("action_type", string(output.Log.ActionType)),
		slog.Int("balance", output.Points),
	)
	srv.events.publish(ctx, behaviorLoggedEvent(output.Log, output.Points))

	return output, nil
}

// GetActivity returns the recent ledger history of a visible profile.
func (srv *profileService) GetActivity(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Activity, error) {
	var activity *entity.Activity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, target, err := loadVisibleProfile(ctx, repoFactory.NewProfileRepository(), actorID, targetID)
		if err != nil {
			return err
		}

		completions, err := repoFactory.NewCompletionRepository().ListByUser(ctx, target.UserID, activityLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list completions")
		}

		behavior, err := repoFactory.NewBehaviorLogRepository().ListByUsers(ctx, []uuid.UUID{target.UserID}, activityLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list behavior logs")
		}

		redemptions, err := repoFactory.NewRedemptionRepository().List(ctx, repository.RedemptionFilter{
			UserID: &target.UserID,
			Limit:  activityLimit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list redemptions")
		}

		activity = &entity.Activity{
			Profile:     target,
			Completions: completions,
			Behavior:    behavior,
			Redemptions: redemptions,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get activity")
	}

	return activity, nil
}

func loadVisibleProfile(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	actorID, targetID uuid.UUID,
) (*entity.Profile, *entity.Profile, error) {
	actor, err := loadActor(ctx, profileRepo, actorID)
	if err != nil {
		return nil, nil, err
	}
	if actorID == targetID {
		return actor, actor, nil
	}

	target, err := findProfile(ctx, profileRepo, targetID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.CanViewProfile(actor, target) {
		return nil, nil, errors.WithStack(domainerrors.ErrProfileNotFound)
	}

	return actor, target, nil
}
