package mapping

import (
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:         d.PurchaseID,
		Code:               d.Code,
		SupplierID:         d.SupplierID,
		RawMaterial:        d.RawMaterial,
		PurchaseDate:       d.PurchaseDate,
		TotalCost:          d.TotalCost,
		Advance:            d.Advance,
		Balance:            d.Balance,
		InvoiceCode:        toNullString(d.InvoiceCode),
		InvoiceDate:        toNullTime(d.InvoiceDate),
		ServiceOrderCode:   toNullString(d.ServiceOrderCode),
		Notes:              toNullString(d.Notes),
		ServiceStatus:      string(d.ServiceStatus),
		CarrierID:          toNullString(d.CarrierID),
		TransportStartDate: toNullTime(d.TransportStartDate),
		TransportEndDate:   toNullTime(d.TransportEndDate),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:         m.PurchaseID,
		Code:               m.Code,
		SupplierID:         m.SupplierID,
		RawMaterial:        m.RawMaterial,
		PurchaseDate:       m.PurchaseDate,
		TotalCost:          m.TotalCost,
		Advance:            m.Advance,
		Balance:            m.Balance,
		InvoiceCode:        fromNullString(m.InvoiceCode),
		InvoiceDate:        fromNullTime(m.InvoiceDate),
		ServiceOrderCode:   fromNullString(m.ServiceOrderCode),
		Notes:              fromNullString(m.Notes),
		ServiceStatus:      domain.ServiceStatus(m.ServiceStatus),
		CarrierID:          fromNullString(m.CarrierID),
		TransportStartDate: fromNullTime(m.TransportStartDate),
		TransportEndDate:   fromNullTime(m.TransportEndDate),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseSlice converts a slice of model Purchases
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}
