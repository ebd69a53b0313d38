package pgsql

import (
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. The purchase code sequence
// defaults to the Postgres counter table and TokenRevocations is left nil; callers
// with a Redis client replace both.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	supplierRepo := newPgxSupplierRepository(dbPool)
	carrierRepo := newPgxCarrierRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SupplierRepo:     supplierRepo,
		CarrierRepo:      carrierRepo,
		PurchaseRepo:     purchaseRepo,
		UserRepo:         userRepo,
		PurchaseSequence: NewPgxPurchaseCodeSequence(dbPool, purchaseRepo),
	}
}
