package services

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/entitycache"
)

// SupplierReaderSvc defines read operations for suppliers
type SupplierReaderSvc interface {
	// ListSuppliers refreshes the cache from the store and returns one filtered page.
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error)

	// GetSupplierByID looks the supplier up in the cache only.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// CachedSuppliers returns the cached list, loading it once if it was never loaded.
	CachedSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// SupplierCacheStatus reports the freshness of the cached list.
	SupplierCacheStatus() entitycache.Status
}

// SupplierWriterSvc defines write operations for suppliers
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string, userID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}

// CarrierReaderSvc defines read operations for carriers
type CarrierReaderSvc interface {
	ListCarriers(ctx context.Context, params dto.ListCarriersParams) (*dto.ListCarriersResponse, error)
	GetCarrierByID(ctx context.Context, carrierID string) (*domain.Carrier, error)
	CachedCarriers(ctx context.Context) ([]domain.Carrier, error)
	CarrierCacheStatus() entitycache.Status
}

// CarrierWriterSvc defines write operations for carriers
type CarrierWriterSvc interface {
	CreateCarrier(ctx context.Context, req dto.CreateCarrierRequest, userID string) (*domain.Carrier, error)
	UpdateCarrier(ctx context.Context, carrierID string, req dto.UpdateCarrierRequest, userID string) (*domain.Carrier, error)
	DeleteCarrier(ctx context.Context, carrierID string, userID string) error
}

// CarrierSvcFacade combines all carrier-related service interfaces
type CarrierSvcFacade interface {
	CarrierReaderSvc
	CarrierWriterSvc
}
