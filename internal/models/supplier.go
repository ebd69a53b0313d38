package models

import "database/sql"

// Supplier is a row of the suppliers table.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	TaxID      string `db:"tax_id"`
	AuditFields
}

// Carrier is a row of the carriers table.
type Carrier struct {
	CarrierID     string         `db:"carrier_id"`
	Name          string         `db:"name"`
	TaxID         string         `db:"tax_id"`
	AccountType   string         `db:"account_type"`
	AccountNumber string         `db:"account_number"`
	InterbankCode sql.NullString `db:"interbank_code"`
	AuditFields
}
