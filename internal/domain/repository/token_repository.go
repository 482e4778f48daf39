// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrTokenNotFound is returned when an access token is absent from the store,
// either because it was never issued or because it has been revoked.
var ErrTokenNotFound = errors.New("access token not found")

// TokenRepository defines the standard operations for bearer token persistence.
// The store exclusively owns the token-to-user mapping; tokens are the
// dependent side of the relationship and are addressed by the hash of their
// raw value.
type TokenRepository interface {
	// Create persists a newly issued access token.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByHash retrieves an access token record by its stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.AccessToken, error)

	// DeleteByHash removes an access token by its stored hash, ending that
	// session. Returns ErrTokenNotFound when no such token exists, so a second
	// revocation of the same token is observable as a failure.
	DeleteByHash(ctx context.Context, tokenHash string) error
}
