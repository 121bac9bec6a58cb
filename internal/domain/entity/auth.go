// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the credential scheme of an Authentication record.
type ProviderType string

// ProviderTypePassword is a username/password credential.
const ProviderTypePassword ProviderType = "password"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // The login name for password credentials.
	PasswordHash   string       // bcrypt hash, only used for password credentials.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"` // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
