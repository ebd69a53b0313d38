package repositories

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// ListSuppliers returns every supplier in the store.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// FindSupplierByTaxID returns the supplier holding taxID, or apperrors.ErrNotFound.
	FindSupplierByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	// SaveSupplier inserts a new supplier. A duplicate tax ID yields apperrors.ErrDuplicate.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier overwrites an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier. Purchases referencing it are left untouched.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
