// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken represents one live bearer credential for a user session.
// Only a SHA-256 hash of the raw value is kept at rest; the raw value is
// handed to the client exactly once, at issuance. A user may hold any number
// of live tokens at the same time (one per device/session), and a token stays
// valid until it is explicitly revoked.
type AccessToken struct {
	ID        uuid.UUID // The unique ID for this token record.
	UserID    uuid.UUID // Links this token to the User it authenticates.
	TokenHash string    // SHA-256 hash of the raw token value.
	IssuedAt  time.Time // Timestamp of when this token was minted.
}
