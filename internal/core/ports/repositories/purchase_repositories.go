package repositories

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data
type PurchaseReader interface {
	// ListPurchases returns every purchase in the store.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// FindLatestPurchaseCode returns the highest code starting with codePrefix,
	// or an empty string when none exists.
	FindLatestPurchaseCode(ctx context.Context, codePrefix string) (string, error)
}

// PurchaseWriter defines write operations for purchase data
type PurchaseWriter interface {
	// SavePurchase inserts a new purchase. A duplicate code yields apperrors.ErrDuplicate.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// UpdatePurchase overwrites an existing purchase, including its transport fields.
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) error

	// DeletePurchase removes a purchase.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseCodeSequence hands out per-prefix sequence numbers atomically.
type PurchaseCodeSequence interface {
	// NextSequence returns the next number for codePrefix (e.g. "ALM-25-"), starting
	// after the highest suffix already stored.
	NextSequence(ctx context.Context, codePrefix string) (int64, error)
}
