package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a row of the purchases table. Dates are stored as DATE columns.
type Purchase struct {
	PurchaseID         string          `db:"purchase_id"`
	Code               string          `db:"code"`
	SupplierID         string          `db:"supplier_id"`
	RawMaterial        string          `db:"raw_material"`
	PurchaseDate       time.Time       `db:"purchase_date"`
	TotalCost          decimal.Decimal `db:"total_cost"`
	Advance            decimal.Decimal `db:"advance"`
	Balance            decimal.Decimal `db:"balance"`
	InvoiceCode        sql.NullString  `db:"invoice_code"`
	InvoiceDate        sql.NullTime    `db:"invoice_date"`
	ServiceOrderCode   sql.NullString  `db:"service_order_code"`
	Notes              sql.NullString  `db:"notes"`
	ServiceStatus      string          `db:"service_status"`
	CarrierID          sql.NullString  `db:"carrier_id"`
	TransportStartDate sql.NullTime    `db:"transport_start_date"`
	TransportEndDate   sql.NullTime    `db:"transport_end_date"`
	AuditFields
}
