// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a household member's login identity.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`        // Login name, unique across the system.
	Email     string    `json:"email,omitempty"` // Optional contact address.
	Name      string    `json:"name"`            // Display name.
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the name shown on dashboards, falling back to the username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Username
}

// Roles returns the roles carried in access tokens for this user.
func (u *User) Roles() Roles {
	if u.Profile == nil {
		return nil
	}

	return Roles{u.Profile.Role}
}
