package services

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/entitycache"
)

// PurchaseReaderSvc defines read operations for purchases
type PurchaseReaderSvc interface {
	// ListPurchases refreshes the cache and returns one page matching the filters,
	// sorted by code descending.
	ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)

	// GetPurchaseByID looks the purchase up in the cache only.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// PurchaseCacheStatus reports the freshness of the cached list.
	PurchaseCacheStatus() entitycache.Status
}

// PurchaseWriterSvc defines write operations for purchases
type PurchaseWriterSvc interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, userID string) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID string, userID string) error
}

// PurchaseTransportSvc attaches and detaches carriers.
type PurchaseTransportSvc interface {
	AssignTransport(ctx context.Context, purchaseID string, req dto.AssignTransportRequest, userID string) (*domain.Purchase, error)
	UnassignTransport(ctx context.Context, purchaseID string, userID string) (*domain.Purchase, error)
}

// PurchaseCodeGenerator issues purchase codes.
type PurchaseCodeGenerator interface {
	NextCode(ctx context.Context) (string, error)
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
	PurchaseTransportSvc
}
