package service

import (
	"context"
)

// Ledger event types.
const (
	EventChoreCompleted      = "chore.completed"
	EventRedemptionRequested = "redemption.requested"
	EventRedemptionProcessed = "redemption.processed"
	EventBehaviorLogged      = "behavior.logged"
)

// LedgerEvent is published after a ledger transaction commits and turned into push
// notifications by the notifier worker.
type LedgerEvent struct {
	Type         string            `json:"type"`
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	RecipientIDs []string          `json:"recipient_ids"`        // User IDs whose devices receive the push
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async processing
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
