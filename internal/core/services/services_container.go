package services

import (
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/platform/config"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/pagination"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	paging := pagination.Limits{Default: cfg.PageSize, Max: cfg.MaxPageSize}

	// Suppliers and carriers first; purchases resolve names through them.
	container.Supplier = NewSupplierService(
		repos.SupplierRepo,
		WithSupplierTaxIDLength(cfg.TaxIDLength),
		WithSupplierPaging(paging),
	)
	container.Carrier = NewCarrierService(
		repos.CarrierRepo,
		WithCarrierFieldLengths(cfg.TaxIDLength, cfg.InterbankCodeLength),
		WithCarrierPaging(paging),
	)

	codes := NewPurchaseCodeGenerator(repos.PurchaseSequence, cfg.PurchaseCodePrefix)
	container.Purchase = NewPurchaseService(
		repos.PurchaseRepo,
		codes,
		WithSupplierLookup(container.Supplier),
		WithCarrierLookup(container.Carrier),
		WithPurchasePaging(paging),
	)

	container.User = NewUserService(
		repos.UserRepo,
		WithRegistrationMasterCode(cfg.RegistrationMasterCode),
		WithMinPasswordLength(cfg.MinPasswordLength),
	)
	container.TokenService = NewTokenService(cfg, container.User, repos.TokenRevocations)

	return container
}
