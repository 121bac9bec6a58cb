package repository

import (
	"context"
	"time"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrRedemptionNotFound is returned when a redemption does not exist.
	ErrRedemptionNotFound = errors.New("redemption not found")
	// ErrRedemptionNotPending is returned when a status transition finds the row already processed.
	ErrRedemptionNotPending = errors.New("redemption is not pending")
)

// RedemptionFilter narrows a redemption listing. Zero values mean no restriction.
type RedemptionFilter struct {
	UserID *uuid.UUID
	Status entity.RedemptionStatus
	Limit  int
}

// RedemptionRepository persists redemption requests.
type RedemptionRepository interface {
	Create(ctx context.Context, redemption *entity.Redemption) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error)

	// List retrieves redemptions matching the filter, newest claim first.
	List(ctx context.Context, filter RedemptionFilter) ([]*entity.Redemption, error)

	// MarkProcessed moves a PENDING redemption to status. It returns ErrRedemptionNotPending
	// when the row is no longer PENDING, so only one decision ever applies.
	MarkProcessed(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus, processedAt time.Time, processedBy uuid.UUID) error
}
