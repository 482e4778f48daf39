// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"taskhub/config"
	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultTokenBytes is the entropy of a raw token before encoding.
const defaultTokenBytes = 32

// tokenService implements service.TokenService with opaque random tokens.
// The raw value is returned to the caller exactly once; only its SHA-256 hash
// is persisted, so a leaked database dump does not yield usable credentials.
type tokenService struct {
	tokenRepo  repository.TokenRepository
	tokenBytes int
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(cfg *config.Config, tokenRepo repository.TokenRepository) service.TokenService {
	tokenBytes := defaultTokenBytes
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenBytes > 0 {
		tokenBytes = cfg.Auth.TokenBytes
	}

	return &tokenService{
		tokenRepo:  tokenRepo,
		tokenBytes: tokenBytes,
	}
}

// Issue mints a new opaque token bound to the user and persists its hash.
func (s *tokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	raw := make([]byte, s.tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate token entropy")
	}

	rawToken := base64.RawURLEncoding.EncodeToString(raw)

	token := &entity.AccessToken{
		UserID:    userID,
		TokenHash: hashToken(rawToken),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to persist access token")
	}

	return rawToken, nil
}

// Resolve maps a presented raw token back to the user it was issued for.
func (s *tokenService) Resolve(ctx context.Context, rawToken string) (uuid.UUID, error) {
	token, err := s.tokenRepo.FindByHash(ctx, hashToken(rawToken))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to resolve access token")
	}

	return token.UserID, nil
}

// Revoke deletes the presented token. Revoking an already-revoked token
// surfaces repository.ErrTokenNotFound to the caller.
func (s *tokenService) Revoke(ctx context.Context, rawToken string) error {
	if err := s.tokenRepo.DeleteByHash(ctx, hashToken(rawToken)); err != nil {
		return errors.Wrap(err, "failed to revoke access token")
	}

	return nil
}

// hashToken derives the storage key for a raw token value.
func hashToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}
