package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RedemptionStatus tracks a redemption through parental review.
type RedemptionStatus string

const (
	RedemptionPending  RedemptionStatus = "PENDING"
	RedemptionApproved RedemptionStatus = "APPROVED"
	RedemptionRejected RedemptionStatus = "REJECTED"
)

// IsValid checks if the RedemptionStatus is a valid value.
func (s RedemptionStatus) IsValid() bool {
	switch s {
	case RedemptionPending, RedemptionApproved, RedemptionRejected:
		return true
	default:
		return false
	}
}

// RedemptionDecision is a parent's verdict on a pending redemption.
type RedemptionDecision string

const (
	DecisionApprove RedemptionDecision = "approve"
	DecisionReject  RedemptionDecision = "reject"
)

// ParseRedemptionDecision accepts "approve" or "reject" in any letter case.
func ParseRedemptionDecision(s string) (RedemptionDecision, bool) {
	switch d := RedemptionDecision(strings.ToLower(strings.TrimSpace(s))); d {
	case DecisionApprove, DecisionReject:
		return d, true
	default:
		return "", false
	}
}

// Status returns the terminal status the decision leads to.
func (d RedemptionDecision) Status() RedemptionStatus {
	if d == DecisionApprove {
		return RedemptionApproved
	}

	return RedemptionRejected
}

// Redemption is a kid's request to exchange points for a reward. Cost is the amount debited
// at claim time and the amount refunded on rejection.
type Redemption struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	RewardID    uuid.UUID        `json:"reward_id"`
	RewardTitle string           `json:"reward_title"`
	Cost        int              `json:"cost"`
	Status      RedemptionStatus `json:"status"`
	ClaimedAt   time.Time        `json:"claimed_at"`
	ProcessedAt *time.Time       `json:"processed_at,omitempty"`
	ProcessedBy *uuid.UUID       `json:"processed_by,omitempty"`
}

// IsPending reports whether the redemption still awaits a decision.
func (r *Redemption) IsPending() bool {
	return r.Status == RedemptionPending
}
