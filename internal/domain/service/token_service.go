package service

import (
	"time"

	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	Type      string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken creates only an access token, used when a refresh token is exchanged.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string, whichever of the two secrets signed it.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
