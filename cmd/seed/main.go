package main

import (
	"context"
	"log/slog"

	"chorechart/config"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/service"
	"chorechart/internal/infra/auth"
	logs "chorechart/internal/infra/log"
	"chorechart/internal/infra/persistence/postgres"
	"chorechart/internal/usecase"
	"chorechart/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	Accounts usecase.AccountUsecase
	Chores   usecase.ChoreUsecase
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newNoopPublisher,
			impl.NewAccountService,
			impl.NewChoreService,
		),
		fx.Invoke(registerSeed),
	).Run()
}

// newNoopPublisher keeps seeding from emitting notifications.
func newNoopPublisher() service.EventPublisher {
	return nil
}

// registerSeed runs after the database hooks have migrated the schema, then stops the app.
func registerSeed(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := seed(context.Background(), params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					exitCode = 1
				}
				_ = params.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func seed(ctx context.Context, params seedParams) error {
	if params.Config.Seed == nil {
		params.Logger.Warn("No seed section in config, nothing to do")

		return nil
	}

	s := &seeder{accounts: params.Accounts, chores: params.Chores, logger: params.Logger}
	seedCfg := params.Config.Seed

	parentID, err := s.ensureParent(ctx, seedCfg.Parent)
	if err != nil {
		return err
	}

	existing, err := s.chores.ListChores(ctx, parentID)
	if err != nil {
		return errors.Wrap(err, "failed to list seeded chores")
	}

	for _, kid := range seedCfg.Kids {
		kidID, err := s.ensureKid(ctx, parentID, kid.SeedAccount)
		if err != nil {
			return err
		}

		for _, chore := range kid.Chores {
			if hasChore(existing, kidID, chore.Title) {
				continue
			}
			if err := s.createChore(ctx, parentID, kidID, chore); err != nil {
				return err
			}
		}
	}

	params.Logger.Info("Seeding finished", slog.String("parent", seedCfg.Parent.Username), slog.Int("kids", len(seedCfg.Kids)))

	return nil
}

type seeder struct {
	accounts usecase.AccountUsecase
	chores   usecase.ChoreUsecase
	logger   *slog.Logger
}

func (s *seeder) ensureParent(ctx context.Context, account config.SeedAccount) (uuid.UUID, error) {
	user, err := s.accounts.RegisterParent(ctx, &usecase.RegisterParentInput{
		Username: account.Username,
		Email:    account.Email,
		Password: account.Password,
		Name:     account.Name,
	})
	if err == nil {
		s.logger.Info("Seeded parent", slog.String("username", account.Username))

		return user.ID, nil
	}
	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return uuid.Nil, errors.Wrapf(err, "failed to seed parent %s", account.Username)
	}

	return s.existingID(ctx, account)
}

func (s *seeder) ensureKid(ctx context.Context, parentID uuid.UUID, account config.SeedAccount) (uuid.UUID, error) {
	user, err := s.accounts.CreateKid(ctx, parentID, &usecase.CreateKidInput{
		Username: account.Username,
		Email:    account.Email,
		Password: account.Password,
		Name:     account.Name,
	})
	if err == nil {
		s.logger.Info("Seeded kid", slog.String("username", account.Username))

		return user.ID, nil
	}
	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return uuid.Nil, errors.Wrapf(err, "failed to seed kid %s", account.Username)
	}

	return s.existingID(ctx, account)
}

// existingID resolves an account seeded by an earlier run through its configured credentials.
func (s *seeder) existingID(ctx context.Context, account config.SeedAccount) (uuid.UUID, error) {
	login, err := s.accounts.Login(ctx, &usecase.LoginInput{Username: account.Username, Password: account.Password})
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "account %s exists with different credentials", account.Username)
	}

	if err := s.accounts.Logout(ctx, &usecase.LogoutInput{RefreshToken: login.RefreshToken}); err != nil {
		s.logger.Warn("Failed to revoke seed session", slog.Any("error", err))
	}

	return login.User.ID, nil
}

func (s *seeder) createChore(ctx context.Context, parentID, kidID uuid.UUID, chore config.SeedChore) error {
	points := chore.Points
	choreType := chore.Type
	if choreType == "" {
		choreType = string(entity.ChoreTypeDaily)
	}

	_, err := s.chores.CreateChore(ctx, parentID, &usecase.ChoreInput{
		Title:       chore.Title,
		PointsValue: &points,
		AssignedTo:  kidID,
		ChoreType:   choreType,
		Icon:        chore.Icon,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to seed chore %q", chore.Title)
	}

	return nil
}

func hasChore(chores []*entity.Chore, kidID uuid.UUID, title string) bool {
	for _, c := range chores {
		if c.AssignedTo == kidID && c.Title == title {
			return true
		}
	}

	return false
}
