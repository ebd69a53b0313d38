package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SupplierRepo     SupplierRepositoryFacade
	CarrierRepo      CarrierRepositoryFacade
	PurchaseRepo     PurchaseRepositoryFacade
	UserRepo         UserRepositoryFacade
	PurchaseSequence PurchaseCodeSequence

	// TokenRevocations is nil when no revocation backend is configured.
	TokenRevocations TokenRevocationStore
}
