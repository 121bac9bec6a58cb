// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chorechart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterParentInput defines the data required to open a household with a parent account.
type RegisterParentInput struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=100"`
}

// CreateKidInput defines the data a parent provides for a new kid account.
type CreateKidInput struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=100"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token exchanged for a new access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

// LogoutInput carries the refresh token to revoke.
type LogoutInput struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access"`
	RefreshToken string       `json:"refresh"`
	User         *entity.User `json:"user"`
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access"`
}

// AccountUsecase covers account provisioning and token issuance.
// Every account is created together with its profile in one transaction.
type AccountUsecase interface {
	RegisterParent(ctx context.Context, input *RegisterParentInput) (*entity.User, error)
	CreateKid(ctx context.Context, actorID uuid.UUID, input *CreateKidInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
