package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds a user's household role and point balance. It shares its primary key with the User.
type Profile struct {
	UserID    uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Points    int        `json:"points"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"` // User ID of the linked parent, kids only.
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsParent reports whether the profile has the PARENT role.
func (p *Profile) IsParent() bool {
	return p != nil && p.Role == RoleParent
}

// IsKid reports whether the profile has the KID role.
func (p *Profile) IsKid() bool {
	return p != nil && p.Role == RoleKid
}

// IsChildOf reports whether the profile is linked to the given parent.
func (p *Profile) IsChildOf(parentID uuid.UUID) bool {
	return p.ParentID != nil && *p.ParentID == parentID
}

// DisplayName returns the name shown on dashboards, falling back to the username.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}

	return p.Username
}

// Credit adds amount to the balance and returns the new balance.
// A negative amount never takes the balance below zero.
func (p *Profile) Credit(amount int) int {
	p.Points = max(0, p.Points+amount)

	return p.Points
}

// Debit subtracts amount from the balance, clamping at zero, and returns the new balance.
func (p *Profile) Debit(amount int) int {
	p.Points = max(0, p.Points-amount)

	return p.Points
}

// CanAfford reports whether the balance covers cost.
func (p *Profile) CanAfford(cost int) bool {
	return p.Points >= cost
}
