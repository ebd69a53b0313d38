package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPurchaseCodeSequence keeps one counter row per code prefix. The upsert takes
// a row lock, so concurrent callers never receive the same number.
type PgxPurchaseCodeSequence struct {
	BaseRepository
	purchases portsrepo.PurchaseReader
}

// NewPgxPurchaseCodeSequence creates a sequence seeded from the codes already stored in purchases.
func NewPgxPurchaseCodeSequence(pool *pgxpool.Pool, purchases portsrepo.PurchaseReader) *PgxPurchaseCodeSequence {
	return &PgxPurchaseCodeSequence{BaseRepository: BaseRepository{Pool: pool}, purchases: purchases}
}

var _ portsrepo.PurchaseCodeSequence = (*PgxPurchaseCodeSequence)(nil)

// NextSequence never goes below the highest suffix already stored, even when rows
// were inserted without passing through the counter.
func (r *PgxPurchaseCodeSequence) NextSequence(ctx context.Context, codePrefix string) (int64, error) {
	latest, err := r.purchases.FindLatestPurchaseCode(ctx, codePrefix)
	if err != nil {
		return 0, err
	}
	floor, _ := domain.ParsePurchaseCodeSequence(codePrefix, latest)

	query := `
		INSERT INTO purchase_code_sequences (code_prefix, last_value)
		VALUES ($1, $2 + 1)
		ON CONFLICT (code_prefix) DO UPDATE
			SET last_value = GREATEST(purchase_code_sequences.last_value, $2) + 1
		RETURNING last_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, codePrefix, floor).Scan(&next); err != nil {
		return 0, translateError(err, fmt.Sprintf("failed to advance purchase code sequence %s", codePrefix))
	}
	return next, nil
}
