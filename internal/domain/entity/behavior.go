package entity

import (
	"time"

	"github.com/google/uuid"
)

// BehaviorActionType classifies a manual point adjustment.
type BehaviorActionType string

const (
	BehaviorGood BehaviorActionType = "GOOD"
	BehaviorBad  BehaviorActionType = "BAD"
)

// Fixed magnitudes of behavior adjustments.
const (
	GoodBehaviorPoints = 100
	BadBehaviorPenalty = 10
)

// IsValid checks if the BehaviorActionType is a valid value.
func (a BehaviorActionType) IsValid() bool {
	return a == BehaviorGood || a == BehaviorBad
}

// PointsChange returns the signed adjustment for the action.
func (a BehaviorActionType) PointsChange() int {
	switch a {
	case BehaviorGood:
		return GoodBehaviorPoints
	case BehaviorBad:
		return -BadBehaviorPenalty
	default:
		return 0
	}
}

// BehaviorLog is the audit row written with every behavior adjustment.
type BehaviorLog struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	ActionType   BehaviorActionType `json:"action_type"`
	PointsChange int                `json:"points_change"`
	Note         string             `json:"note"`
	LoggedBy     uuid.UUID          `json:"logged_by"`
	CreatedAt    time.Time          `json:"timestamp"`
}
