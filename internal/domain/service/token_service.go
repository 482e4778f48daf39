package service

import (
	"context"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and resolving opaque bearer
// tokens. Tokens are cryptographically random values bound to a user identity
// in the credential store; they carry no claims of their own, so resolving and
// revoking always consult the store. Issuing a new token never invalidates
// prior ones: a user may hold one live token per device.
type TokenService interface {
	// Issue mints a new opaque token for the user, persists its hash, and
	// returns the raw value. The raw value is not recoverable afterwards.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Resolve maps a presented raw token back to the identity it was issued
	// for. Returns repository.ErrTokenNotFound when the token is unknown or
	// has been revoked.
	Resolve(ctx context.Context, rawToken string) (uuid.UUID, error)

	// Revoke deletes the presented token from the store. A second call for
	// the same token returns repository.ErrTokenNotFound.
	Revoke(ctx context.Context, rawToken string) error
}
