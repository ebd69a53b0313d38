package domain

// Supplier is a vendor of raw materials (proveedor), identified by a unique tax ID.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	TaxID      string `json:"taxID"`
	AuditFields
}

// GetID satisfies entitycache.Identifiable.
func (s Supplier) GetID() string { return s.SupplierID }

// Carrier is a transport provider (transportista) that can be assigned to purchases.
type Carrier struct {
	CarrierID     string      `json:"carrierID"`
	Name          string      `json:"name"`
	TaxID         string      `json:"taxID"`
	AccountType   AccountType `json:"accountType"`
	AccountNumber string      `json:"accountNumber"`
	InterbankCode *string     `json:"interbankCode,omitempty"`
	AuditFields
}

// GetID satisfies entitycache.Identifiable.
func (c Carrier) GetID() string { return c.CarrierID }
