package repositories

import (
	"context"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
)

// CarrierReader defines read operations for carrier data
type CarrierReader interface {
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
	FindCarrierByTaxID(ctx context.Context, taxID string) (*domain.Carrier, error)
}

// CarrierWriter defines write operations for carrier data
type CarrierWriter interface {
	SaveCarrier(ctx context.Context, carrier domain.Carrier) error
	UpdateCarrier(ctx context.Context, carrier domain.Carrier) error
	DeleteCarrier(ctx context.Context, carrierID string) error
}

// CarrierRepositoryFacade combines all carrier-related repository interfaces
type CarrierRepositoryFacade interface {
	CarrierReader
	CarrierWriter
}
