package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateCompletion is returned when a DAILY completion for the same (user, chore, date) already exists.
var ErrDuplicateCompletion = errors.New("chore already completed on this date")

// CompletionRepository persists the append-only chore completion log.
type CompletionRepository interface {
	// Create appends a completion. It returns ErrDuplicateCompletion when a DAILY completion
	// clashes on (user, chore, date). ONE_TIME completions never clash.
	Create(ctx context.Context, completion *entity.ChoreCompletion) error

	// ExistsOn reports whether the user completed the chore as a DAILY chore on date (YYYY-MM-DD).
	ExistsOn(ctx context.Context, userID, choreID uuid.UUID, date string) (bool, error)

	// ListByUser retrieves a user's completions, newest first. A limit of 0 means no limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ChoreCompletion, error)
}
