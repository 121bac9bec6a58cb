package repository

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
