package impl

import (
	"context"
	"testing"
	"time"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (*sessionService, *txFixture) {
	fx := newTxFixture(t)
	srv := NewSessionService(SessionServiceParams{TxManager: fx.txManager, Logger: newDiscardLogger()}).(*sessionService)

	return srv, fx
}

func TestSessionService_GetActiveSessions(t *testing.T) {
	srv, fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.RefreshToken{
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(2 * time.Hour)},
	}

	fx.tokens.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return(sessions, nil)

	got, err := srv.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSessionService_RevokeSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("own session", func(t *testing.T) {
		srv, fx := createTestSessionService(t)
		fx.tokens.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
		fx.tokens.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)

		require.NoError(t, srv.RevokeSession(ctx, userID, sessionID))
	})

	t.Run("another user's session", func(t *testing.T) {
		srv, fx := createTestSessionService(t)
		fx.tokens.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New()}, nil)

		err := srv.RevokeSession(ctx, userID, sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	})

	t.Run("expired session", func(t *testing.T) {
		srv, fx := createTestSessionService(t)
		fx.tokens.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(nil, repository.ErrRefreshTokenExpired)

		err := srv.RevokeSession(ctx, userID, sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))
	})
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	srv, fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokens.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	require.NoError(t, srv.RevokeAllSessions(ctx, userID))
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	srv, fx := createTestSessionService(t)

	ctx := context.Background()
	fx.tokens.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(errors.New("db gone"))

	err := srv.CleanupExpiredSessions(ctx)

	assert.Error(t, err)
}
