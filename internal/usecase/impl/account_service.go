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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	clock             clock
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// newAccount bundles what a registration writes.
type newAccount struct {
	username string
	email    string
	password string
	name     string
	role     entity.Role
	parentID *uuid.UUID
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) (usecase.AccountUsecase, error) {
	clk, err := newClock(params.Config)
	if err != nil {
		return nil, err
	}

	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		clock:             clk,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterParent opens a household: a PARENT account with its profile and password credentials.
func (srv *accountService) RegisterParent(ctx context.Context, input *usecase.RegisterParentInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	user, err := srv.register(ctx, newAccount{
		username: input.Username,
		email:    input.Email,
		password: input.Password,
		name:     input.Name,
		role:     entity.RoleParent,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register parent")
	}

	return user, nil
}

// CreateKid creates a KID account linked to the calling parent.
func (srv *accountService) CreateKid(ctx context.Context, actorID uuid.UUID, input *usecase.CreateKidInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repoFactory.NewProfileRepository(), actorID)
		if err != nil {
			return err
		}

		return errors.WithStack(policy.CheckCreateKid(actor))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kid")
	}

	user, err := srv.register(ctx, newAccount{
		username: input.Username,
		email:    input.Email,
		password: input.Password,
		name:     input.Name,
		role:     entity.RoleKid,
		parentID: &actorID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kid")
	}

	return user, nil
}

func (srv *accountService) register(ctx context.Context, account newAccount) (*entity.User, error) {
	username := strings.TrimSpace(account.username)
	if username == "" || account.password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username and password are required"))
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username), slog.Any("role", account.role))

	// bcrypt is CPU-bound, keep it out of the transaction.
	passwordHash, err := srv.hasher.Hash(account.password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username: username,
		Email:    strings.TrimSpace(account.email),
		Name:     strings.TrimSpace(account.name),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.WithStack(domainerrors.ErrUserAlreadyExists)
			}

			return errors.Wrap(err, "failed to create user")
		}

		profile := &entity.Profile{
			UserID:   user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     account.role,
			ParentID: account.parentID,
		}
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}
		user.Profile = profile

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypePassword,
			ProviderUserID: user.Username,
			PasswordHash:   passwordHash,
		}
		if err := repoFactory.NewAuthRepository().CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.Any("user_id", user.ID), slog.Any("role", account.role))

	return user, nil
}

// Login checks the password and issues an access and refresh token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	username := strings.TrimSpace(input.Username)

	var authRecord *entity.Authentication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.NewAuthRepository().FindAuthentication(ctx, entity.ProviderTypePassword, username)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, authRecord.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(err, "failed to find user")
		}

		if srv.maxActiveSessions > 0 {
			// Serializes concurrent logins of one user so the count below stays accurate.
			if _, err := lockActor(ctx, repoFactory.NewProfileRepository(), user.ID); err != nil {
				return err
			}

			active, err := repoFactory.NewRefreshTokenRepository().CountActiveSessionsByUserID(ctx, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if active >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}
		}

		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := repoFactory.NewRefreshTokenRepository().CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashToken(refreshToken),
			ExpiresAt: srv.clock.now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		output = &usecase.LoginOutput{AccessToken: accessToken, RefreshToken: refreshToken, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// RefreshToken exchanges a stored, unexpired refresh token for a new access token.
// The refresh token itself is not rotated.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "not a refresh token")
	}

	var accessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stored, err := repoFactory.NewRefreshTokenRepository().FindRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRefreshTokenExpired):
				return errors.WithStack(domainerrors.ErrRefreshTokenExpired)
			case errors.Is(err, repository.ErrRefreshTokenNotFound):
				return errors.WithStack(domainerrors.ErrRefreshTokenNotFound)
			default:
				return errors.Wrap(err, "failed to find refresh token")
			}
		}

		user, err := repoFactory.NewUserRepository().FindByID(ctx, stored.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return errors.Wrap(err, "failed to find user")
		}

		accessToken, err = srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())

		return errors.Wrap(err, "failed to generate access token")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout revokes a refresh token. Revoking an unknown token succeeds.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || input.RefreshToken == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("refresh is required"))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}
