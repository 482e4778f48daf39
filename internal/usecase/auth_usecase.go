// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and their first bearer token.
type RegisterOutput struct {
	User  *entity.User
	Token string
}

// LoginOutput returns the authenticated user's id and a freshly issued token.
// Each login mints a new token; earlier tokens stay valid (multi-device).
type LoginOutput struct {
	UserID uuid.UUID
	Token  string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
// Identity is always threaded explicitly: operations that act on behalf of an
// authenticated caller take the resolved user id or the presented raw token as
// a parameter, never ambient request state.
type AuthUsecase interface {
	// Register creates a user account and issues its first bearer token.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies email/password credentials and issues a fresh token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes exactly the token that authenticated the current request.
	Logout(ctx context.Context, rawToken string) error

	// CurrentUser loads the user a resolved token belongs to.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
