package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProcessRedemptionInput carries a parent's decision, "approve" or "reject".
type ProcessRedemptionInput struct {
	Action string `json:"action" validate:"required"`
}

// RedemptionUsecase defines the review queue and voucher issuance.
type RedemptionUsecase interface {
	// ListRedemptions returns every redemption for parents and the kid's own otherwise.
	// An empty status lists all statuses.
	ListRedemptions(ctx context.Context, actorID uuid.UUID, status entity.RedemptionStatus) ([]*entity.Redemption, error)
	GetRedemption(ctx context.Context, actorID, redemptionID uuid.UUID) (*entity.Redemption, error)
	ProcessRedemption(ctx context.Context, actorID, redemptionID uuid.UUID, input *ProcessRedemptionInput) (*entity.Redemption, error)
	// GetVoucher renders a PNG QR code for an approved redemption.
	GetVoucher(ctx context.Context, actorID, redemptionID uuid.UUID) ([]byte, error)
}
