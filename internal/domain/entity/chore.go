package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChoreType decides whether a chore disappears after completion or comes back every day.
type ChoreType string

const (
	ChoreTypeOneTime ChoreType = "ONE_TIME"
	ChoreTypeDaily   ChoreType = "DAILY"
)

// Defaults applied when a chore is created without explicit values.
const (
	DefaultChorePoints = 10
	DefaultChoreIcon   = "🧹"
)

// IsValid checks if the ChoreType is a valid value.
func (t ChoreType) IsValid() bool {
	return t == ChoreTypeOneTime || t == ChoreTypeDaily
}

// Chore is an assignable task worth a number of points.
type Chore struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PointsValue int       `json:"points_value"`
	AssignedTo  uuid.UUID `json:"assigned_to"`
	ChoreType   ChoreType `json:"chore_type"`
	Icon        string    `json:"icon"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsDaily reports whether the chore recurs every calendar day.
func (c *Chore) IsDaily() bool {
	return c.ChoreType == ChoreTypeDaily
}

// ChoreCompletion is an append-only record of one completion. Title and points are snapshots
// so the row stays meaningful after a one-time chore has been removed.
type ChoreCompletion struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ChoreID      uuid.UUID `json:"chore_id"`
	ChoreTitle   string    `json:"chore_title"`
	PointsEarned int       `json:"points_earned"`
	ChoreType    ChoreType `json:"chore_type"` // Snapshot; only DAILY completions are unique per date.
	CompletedAt  time.Time `json:"completed_at"`
	CompletedOn  string    `json:"completed_on"` // YYYY-MM-DD in the ledger time zone.
}

// CalendarDate returns the YYYY-MM-DD date of t in loc.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(time.DateOnly)
}
