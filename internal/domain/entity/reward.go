package entity

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a reward is created without explicit values.
const (
	DefaultRewardCost = 50
	DefaultRewardIcon = "🎁"
)

// Reward is something a kid can exchange points for.
type Reward struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Icon        string    `json:"icon"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
