package impl

import (
	"context"
	"log/slog"

	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions retrieves all unexpired sessions of a user.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var sessions []*entity.RefreshToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		sessions, err = repoFactory.NewRefreshTokenRepository().FindRefreshTokensByUserID(ctx, userID)

		return errors.Wrap(err, "failed to find refresh tokens")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get active sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	return sessions, nil
}

// RevokeSession revokes a specific session of the user.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		token, err := refreshRepo.FindRefreshTokenByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.WithStack(domainerrors.ErrRefreshTokenNotFound)
			}

			return errors.Wrap(err, "failed to find session")
		}

		if token.UserID != userID {
			return errors.Wrap(domainerrors.ErrPermissionDenied, "session does not belong to user")
		}

		if err := refreshRepo.DeleteRefreshToken(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to revoke session", slog.Any("error", err), slog.Any("user_id", userID), slog.Any("session_id", sessionID))

		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// RevokeAllSessions revokes all sessions of the user.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID), "failed to delete all sessions")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}

	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewRefreshTokenRepository().DeleteExpiredRefreshTokens(ctx), "failed to delete expired sessions")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Info("Expired sessions cleaned up")

	return nil
}
