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

// choreService implements the ChoreUsecase interface.
type choreService struct {
	txManager repository.TransactionManager
	events    eventNotifier
	clock     clock
	logger    *slog.Logger
}

// ChoreServiceParams holds dependencies for ChoreService, injected by Fx.
type ChoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewChoreService is the constructor for choreService.
func NewChoreService(params ChoreServiceParams) (usecase.ChoreUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	return &choreService{
		txManager: params.TxManager,
		events:    eventNotifier{publisher: params.Publisher, logger: params.Logger},
		clock:     clk,
		logger:    params.Logger,
	}, nil
}

func (srv *choreService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListChores returns a kid's chores still open today, or every chore of a parent's linked kids.
func (srv *choreService) ListChores(ctx context.Context, actorID uuid.UUID) ([]*entity.Chore, error) {
	var chores []*entity.Chore

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		choreRepo := repoFactory.NewChoreRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		if actor.IsKid() {
			chores, err = choreRepo.ListActiveByAssignee(ctx, actor.UserID, srv.clock.dateOf(srv.clock.now()))

			return errors.Wrap(err, "failed to list active chores")
		}

		kids, err := profileRepo.ListKidsByParent(ctx, actor.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list kids")
		}

		chores, err = choreRepo.ListByAssignees(ctx, profileIDs(kids))

		return errors.Wrap(err, "failed to list chores")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chores")
	}

	return chores, nil
}

// GetChore returns a chore visible to the actor. Invisible chores look missing.
func (srv *choreService) GetChore(ctx context.Context, actorID, choreID uuid.UUID) (*entity.Chore, error) {
	var chore *entity.Chore

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		found, err := findChore(ctx, repoFactory.NewChoreRepository(), choreID)
		if err != nil {
			return err
		}

		assignee, err := findAssignee(ctx, profileRepo, found.AssignedTo)
		if err != nil {
			return err
		}

		if !policy.CanViewChore(actor, found, assignee) {
			return errors.WithStack(domainerrors.ErrChoreNotFound)
		}
		chore = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chore")
	}

	return chore, nil
}

// CreateChore lets a parent assign a new chore to a linked kid.
func (srv *choreService) CreateChore(ctx context.Context, actorID uuid.UUID, input *usecase.ChoreInput) (*entity.Chore, error) {
	chore, err := buildChore(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		actor, err := loadActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		assignee, err := findAssignee(ctx, profileRepo, chore.AssignedTo)
		if err != nil {
			return err
		}

		if err := policy.CheckAssign(actor, assignee); err != nil {
			return errors.WithStack(err)
		}

		chore.CreatedBy = actor.UserID

		return errors.Wrap(repoFactory.NewChoreRepository().Create(ctx, chore), "failed to create chore")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create chore", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create chore")
	}

	srv.log(ctx).Info("Chore created",
		slog.Any("chore_id", chore.ID),
		slog.Any("assigned_to", chore.AssignedTo),
		slog.String("chore_type", string(chore.ChoreType)),
	)

	return chore, nil
}

// UpdateChore replaces the editable fields of a chore managed by the actor.
func (srv *choreService) UpdateChore(ctx context.Context, actorID, choreID uuid.UUID, input *usecase.ChoreInput) (*entity.Chore, error) {
	changes, err := buildChore(input)
	if err != nil {
		return nil, err
	}

	var chore *entity.Chore

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		choreRepo := repoFactory.NewChoreRepository()

		actor, current, err := srv.loadManagedChore(ctx, profileRepo, choreRepo, actorID, choreID)
		if err != nil {
			return err
		}

		if changes.AssignedTo != current.AssignedTo {
			assignee, err := findAssignee(ctx, profileRepo, changes.AssignedTo)
			if err != nil {
				return err
			}
			if err := policy.CheckAssign(actor, assignee); err != nil {
				return errors.WithStack(err)
			}
		}

		current.Title = changes.Title
		current.Description = changes.Description
		current.PointsValue = changes.PointsValue
		current.AssignedTo = changes.AssignedTo
		current.ChoreType = changes.ChoreType
		current.Icon = changes.Icon

		if err := choreRepo.Update(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update chore")
		}
		chore = current

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update chore")
	}

	return chore, nil
}

// DeleteChore removes a chore managed by the actor. Its completions stay in the log.
func (srv *choreService) DeleteChore(ctx context.Context, actorID, choreID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		choreRepo := repoFactory.NewChoreRepository()

		if _, _, err := srv.loadManagedChore(ctx, repoFactory.NewProfileRepository(), choreRepo, actorID, choreID); err != nil {
			return err
		}

		if err := choreRepo.Delete(ctx, choreID); err != nil {
			if errors.Is(err, repository.ErrChoreNotFound) {
				return errors.WithStack(domainerrors.ErrChoreNotFound)
			}

			return errors.Wrap(err, "failed to delete chore")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete chore")
	}

	srv.log(ctx).Info("Chore deleted", slog.Any("chore_id", choreID))

	return nil
}

// CompleteChore credits the assignee, records the completion and removes a ONE_TIME chore,
// all in one transaction. A DAILY chore completes at most once per ledger date.
func (srv *choreService) CompleteChore(ctx context.Context, actorID, choreID uuid.UUID) (*usecase.CompleteChoreOutput, error) {
	var (
		output *usecase.CompleteChoreOutput
		kid    *entity.Profile
		chore  *entity.Chore
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		choreRepo := repoFactory.NewChoreRepository()
		completionRepo := repoFactory.NewCompletionRepository()

		// Completions of one kid queue on this lock, so the chore read below sees
		// any deletion made by a completion that committed first.
		actor, err := lockActor(ctx, profileRepo, actorID)
		if err != nil {
			return err
		}

		chore, err = findChore(ctx, choreRepo, choreID)
		if err != nil {
			return err
		}

		if err := policy.CheckComplete(actor, chore); err != nil {
			return errors.WithStack(err)
		}

		completedAt := srv.clock.now()
		completedOn := srv.clock.dateOf(completedAt)

		if chore.IsDaily() {
			done, err := completionRepo.ExistsOn(ctx, actor.UserID, chore.ID, completedOn)
			if err != nil {
				return errors.Wrap(err, "failed to check completion")
			}
			if done {
				return errors.WithStack(domainerrors.ErrAlreadyCompleted)
			}
		}

		balance, err := credit(ctx, profileRepo, actor, chore.PointsValue)
		if err != nil {
			return err
		}

		completion := &entity.ChoreCompletion{
			UserID:       actor.UserID,
			ChoreID:      chore.ID,
			ChoreTitle:   chore.Title,
			PointsEarned: chore.PointsValue,
			ChoreType:    chore.ChoreType,
			CompletedAt:  completedAt,
			CompletedOn:  completedOn,
		}
		if err := completionRepo.Create(ctx, completion); err != nil {
			if errors.Is(err, repository.ErrDuplicateCompletion) {
				return errors.WithStack(domainerrors.ErrAlreadyCompleted)
			}

			return errors.Wrap(err, "failed to record completion")
		}

		if !chore.IsDaily() {
			if err := choreRepo.Delete(ctx, chore.ID); err != nil {
				return errors.Wrap(err, "failed to remove one-time chore")
			}
		}

		kid = actor
		output = &usecase.CompleteChoreOutput{Completion: completion, Points: balance}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete chore")
	}

	srv.log(ctx).Info("Chore completed",
		slog.Any("chore_id", choreID),
		slog.Any("user_id", actorID),
		slog.Int("points_earned", output.Completion.PointsEarned),
		slog.Int("balance", output.Points),
	)
	srv.events.publish(ctx, choreCompletedEvent(kid, chore, output.Points))

	return output, nil
}

// loadManagedChore loads the actor and a chore the actor may update or delete.
func (srv *choreService) loadManagedChore(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	choreRepo repository.ChoreRepository,
	actorID, choreID uuid.UUID,
) (*entity.Profile, *entity.Chore, error) {
	actor, err := loadActor(ctx, profileRepo, actorID)
	if err != nil {
		return nil, nil, err
	}
	if err := policy.RequireParent(actor); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	chore, err := findChore(ctx, choreRepo, choreID)
	if err != nil {
		return nil, nil, err
	}

	assignee, err := findAssignee(ctx, profileRepo, chore.AssignedTo)
	if err != nil {
		return nil, nil, err
	}

	if err := policy.CheckManageChore(actor, chore, assignee); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return actor, chore, nil
}

func findChore(ctx context.Context, choreRepo repository.ChoreRepository, choreID uuid.UUID) (*entity.Chore, error) {
	chore, err := choreRepo.FindByID(ctx, choreID)
	if err != nil {
		if errors.Is(err, repository.ErrChoreNotFound) {
			return nil, errors.WithStack(domainerrors.ErrChoreNotFound)
		}

		return nil, errors.Wrap(err, "failed to find chore")
	}

	return chore, nil
}

// findAssignee loads the profile a chore is (or will be) assigned to. A missing profile is returned as nil.
func findAssignee(ctx context.Context, profileRepo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	assignee, err := profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find assignee")
	}

	return assignee, nil
}

// buildChore validates input and fills in the defaults.
func buildChore(input *usecase.ChoreInput) (*entity.Chore, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required"))
	}
	if input.AssignedTo == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("assigned_to is required"))
	}

	choreType := entity.ChoreTypeOneTime
	if input.ChoreType != "" {
		choreType = entity.ChoreType(strings.ToUpper(strings.TrimSpace(input.ChoreType)))
		if !choreType.IsValid() {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("chore_type must be ONE_TIME or DAILY"))
		}
	}

	points := entity.DefaultChorePoints
	if input.PointsValue != nil {
		points = *input.PointsValue
	}
	if points < 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("points_value must not be negative"))
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = entity.DefaultChoreIcon
	}

	return &entity.Chore{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		PointsValue: points,
		AssignedTo:  input.AssignedTo,
		ChoreType:   choreType,
		Icon:        icon,
	}, nil
}
