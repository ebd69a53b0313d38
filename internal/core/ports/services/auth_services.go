package services

import (
	"context"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// TokenSvcFacade defines the interface for access and refresh token management.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT for the user. The returned tokenID is its jti claim.
	GenerateAccessToken(ctx context.Context, user *domain.User) (token string, tokenID string, expiresAt time.Time, err error)

	// GenerateRefreshToken creates an opaque refresh token bound to the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a refresh token against the stored hash and expiry
	// and returns its owner.
	ValidateAndParseRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)

	// RevokeAccessToken blocks an access token until it would have expired anyway.
	RevokeAccessToken(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsAccessTokenRevoked reports whether RevokeAccessToken was called for tokenID.
	IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
