package mapping

import (
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		TaxID:       d.TaxID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		TaxID:       m.TaxID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

// ToModelCarrier converts a domain Carrier to a model Carrier
func ToModelCarrier(d domain.Carrier) models.Carrier {
	return models.Carrier{
		CarrierID:     d.CarrierID,
		Name:          d.Name,
		TaxID:         d.TaxID,
		AccountType:   string(d.AccountType),
		AccountNumber: d.AccountNumber,
		InterbankCode: toNullString(d.InterbankCode),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCarrier converts a model Carrier to a domain Carrier
func ToDomainCarrier(m models.Carrier) domain.Carrier {
	return domain.Carrier{
		CarrierID:     m.CarrierID,
		Name:          m.Name,
		TaxID:         m.TaxID,
		AccountType:   domain.AccountType(m.AccountType),
		AccountNumber: m.AccountNumber,
		InterbankCode: fromNullString(m.InterbankCode),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCarrierSlice converts a slice of model Carriers
func ToDomainCarrierSlice(ms []models.Carrier) []domain.Carrier {
	ds := make([]domain.Carrier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCarrier(m)
	}
	return ds
}
