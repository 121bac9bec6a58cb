package usecase

import (
	"context"

	"chorechart/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidEvent marks a ledger event that can never be delivered. Push handlers
// acknowledge such messages instead of asking for a redelivery.
var ErrInvalidEvent = errors.New("invalid ledger event")

// DispatchResult summarizes the pushes sent for one ledger event.
type DispatchResult struct {
	Devices          int
	Sent             int
	Failed           int
	DeactivatedCount int
}

// NotifierUsecase turns published ledger events into push notifications.
type NotifierUsecase interface {
	DispatchLedgerEvent(ctx context.Context, event *service.LedgerEvent) (*DispatchResult, error)
}
