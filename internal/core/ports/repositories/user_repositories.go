package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserName changes the display name, the only mutable profile field.
	UpdateUserName(ctx context.Context, userID, name string, updatedAt time.Time) error

	// UpdateRefreshToken stores the hash and expiry of the active refresh token.
	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// TokenRevocationStore remembers revoked access tokens until they expire on their own.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
