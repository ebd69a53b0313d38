// Package redisstore holds the Redis-backed adapters: the purchase code counter
// and the access-token revocation list.
package redisstore

import (
	"fmt"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
)

const (
	purchaseSequenceKeyPrefix = "purchase_code_seq:"
	revokedTokenKeyPrefix     = "revoked_token:"
)

// unavailable marks a Redis failure so callers can fall back.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStoreUnavailable, err)
}
