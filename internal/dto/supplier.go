package dto

import (
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/pagination"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	TaxID string `json:"taxID" binding:"required,taxid"`
}

// UpdateSupplierRequest holds the fields to merge into an existing supplier.
// Nil pointers leave the stored value untouched.
type UpdateSupplierRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=200"`
	TaxID *string `json:"taxID" binding:"omitempty,taxid"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	TaxID         string    `json:"taxID"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Search  string `form:"search"`
	Page    int    `form:"page,default=1" binding:"min=0"`
	PerPage int    `form:"perPage" binding:"min=0,max=100"`
}

// ListSuppliersResponse is one page of suppliers.
type ListSuppliersResponse struct {
	Items []SupplierResponse `json:"items"`
	pagination.Page
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		TaxID:         s.TaxID,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToSupplierResponses converts a slice of suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
