package dto

import (
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/pagination"
)

// CreateCarrierRequest defines the data needed to register a carrier.
type CreateCarrierRequest struct {
	Name          string             `json:"name" binding:"required,max=200"`
	TaxID         string             `json:"taxID" binding:"required,taxid"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,accounttype"`
	AccountNumber string             `json:"accountNumber" binding:"required,max=40"`
	InterbankCode *string            `json:"interbankCode" binding:"omitempty,interbank"`
}

// UpdateCarrierRequest holds the fields to merge into an existing carrier.
type UpdateCarrierRequest struct {
	Name          *string             `json:"name" binding:"omitempty,min=1,max=200"`
	TaxID         *string             `json:"taxID" binding:"omitempty,taxid"`
	AccountType   *domain.AccountType `json:"accountType" binding:"omitempty,accounttype"`
	AccountNumber *string             `json:"accountNumber" binding:"omitempty,min=1,max=40"`
	InterbankCode *string             `json:"interbankCode" binding:"omitempty,interbank"`
}

// CarrierResponse defines the data returned for a carrier.
type CarrierResponse struct {
	CarrierID     string             `json:"carrierID"`
	Name          string             `json:"name"`
	TaxID         string             `json:"taxID"`
	AccountType   domain.AccountType `json:"accountType"`
	AccountNumber string             `json:"accountNumber"`
	InterbankCode *string            `json:"interbankCode,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListCarriersParams defines query parameters for listing carriers.
type ListCarriersParams struct {
	Search  string `form:"search"`
	Page    int    `form:"page,default=1" binding:"min=0"`
	PerPage int    `form:"perPage" binding:"min=0,max=100"`
}

// ListCarriersResponse is one page of carriers.
type ListCarriersResponse struct {
	Items []CarrierResponse `json:"items"`
	pagination.Page
}

// ToCarrierResponse converts a domain.Carrier to CarrierResponse DTO
func ToCarrierResponse(c *domain.Carrier) CarrierResponse {
	return CarrierResponse{
		CarrierID:     c.CarrierID,
		Name:          c.Name,
		TaxID:         c.TaxID,
		AccountType:   c.AccountType,
		AccountNumber: c.AccountNumber,
		InterbankCode: c.InterbankCode,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToCarrierResponses converts a slice of carriers.
func ToCarrierResponses(carriers []domain.Carrier) []CarrierResponse {
	res := make([]CarrierResponse, len(carriers))
	for i := range carriers {
		res[i] = ToCarrierResponse(&carriers[i])
	}
	return res
}
