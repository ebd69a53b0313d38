package redisstore

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// TokenRevocations stores revoked token IDs with a TTL equal to the token's remaining lifetime.
type TokenRevocations struct {
	client *redis.Client
}

// NewTokenRevocations creates a revocation list on client.
func NewTokenRevocations(client *redis.Client) *TokenRevocations {
	return &TokenRevocations{client: client}
}

var _ portsrepo.TokenRevocationStore = (*TokenRevocations)(nil)

func (r *TokenRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return unavailable("revoke token", err)
	}
	return nil
}

func (r *TokenRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, unavailable("check revoked token", err)
	}
	return n > 0, nil
}
