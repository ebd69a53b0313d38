package redisstore

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// advanceSequence raises the counter to the floor when it lags behind, then
// increments it. The script runs atomically, so concurrent callers never share a number.
var advanceSequence = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if floor > current then
	current = floor
end
current = current + 1
redis.call('SET', KEYS[1], tostring(current))
return current
`)

// PurchaseCodeSequence keeps one Redis counter per code prefix. Every call reads
// the highest code in the purchase store as a floor, so codes saved while Redis
// was unreachable are never issued again.
type PurchaseCodeSequence struct {
	client    *redis.Client
	purchases portsrepo.PurchaseReader
}

// NewPurchaseCodeSequence creates a Redis counter floored by purchases.
func NewPurchaseCodeSequence(client *redis.Client, purchases portsrepo.PurchaseReader) *PurchaseCodeSequence {
	return &PurchaseCodeSequence{client: client, purchases: purchases}
}

var _ portsrepo.PurchaseCodeSequence = (*PurchaseCodeSequence)(nil)

func (s *PurchaseCodeSequence) NextSequence(ctx context.Context, codePrefix string) (int64, error) {
	latest, err := s.purchases.FindLatestPurchaseCode(ctx, codePrefix)
	if err != nil {
		return 0, err
	}
	floor, _ := domain.ParsePurchaseCodeSequence(codePrefix, latest)

	next, err := advanceSequence.Run(ctx, s.client, []string{purchaseSequenceKeyPrefix + codePrefix}, floor).Int64()
	if err != nil {
		return 0, unavailable("advance purchase code counter", err)
	}
	return next, nil
}
