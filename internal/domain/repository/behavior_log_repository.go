package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// BehaviorLogRepository persists behavior adjustments.
type BehaviorLogRepository interface {
	Create(ctx context.Context, log *entity.BehaviorLog) error

	// ListByUsers retrieves logs for any of the given users, newest first. A limit of 0 means no limit.
	ListByUsers(ctx context.Context, userIDs []uuid.UUID, limit int) ([]*entity.BehaviorLog, error)
}
