package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase manages the refresh-token sessions of the calling user.
type SessionUsecase interface {
	// GetActiveSessions lists the unexpired sessions of a user.
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)
	// RevokeSession deletes one session owned by the user.
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	// RevokeAllSessions logs the user out everywhere.
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
	// CleanupExpiredSessions removes expired refresh tokens of all users.
	CleanupExpiredSessions(ctx context.Context) error
}
