package dto

import (
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
// The code and balance are derived by the server.
type CreatePurchaseRequest struct {
	SupplierID       string               `json:"supplierID" binding:"required"`
	RawMaterial      string               `json:"rawMaterial" binding:"required,max=200"`
	PurchaseDate     *Date                `json:"purchaseDate" binding:"required"`
	TotalCost        *decimal.Decimal     `json:"totalCost" binding:"required"`
	Advance          *decimal.Decimal     `json:"advance"` // defaults to 0
	InvoiceCode      *string              `json:"invoiceCode" binding:"omitempty,max=50"`
	InvoiceDate      *Date                `json:"invoiceDate"`
	ServiceOrderCode *string              `json:"serviceOrderCode" binding:"omitempty,max=50"`
	Notes            *string              `json:"notes" binding:"omitempty,max=1000"`
	ServiceStatus    domain.ServiceStatus `json:"serviceStatus" binding:"required,servicestatus"`
}

// UpdatePurchaseRequest holds the fields to merge into an existing purchase.
// Setting totalCost or advance re-derives the balance.
type UpdatePurchaseRequest struct {
	SupplierID       *string               `json:"supplierID" binding:"omitempty,min=1"`
	RawMaterial      *string               `json:"rawMaterial" binding:"omitempty,min=1,max=200"`
	PurchaseDate     *Date                 `json:"purchaseDate"`
	TotalCost        *decimal.Decimal      `json:"totalCost"`
	Advance          *decimal.Decimal      `json:"advance"`
	InvoiceCode      *string               `json:"invoiceCode" binding:"omitempty,max=50"`
	InvoiceDate      *Date                 `json:"invoiceDate"`
	ServiceOrderCode *string               `json:"serviceOrderCode" binding:"omitempty,max=50"`
	Notes            *string               `json:"notes" binding:"omitempty,max=1000"`
	ServiceStatus    *domain.ServiceStatus `json:"serviceStatus" binding:"omitempty,servicestatus"`
}

// AssignTransportRequest attaches a carrier and its service window to a purchase.
type AssignTransportRequest struct {
	CarrierID string `json:"carrierID" binding:"required"`
	StartDate *Date  `json:"startDate" binding:"required"`
	EndDate   *Date  `json:"endDate" binding:"required"`
}

// ListPurchasesParams are the filter bar inputs plus paging.
type ListPurchasesParams struct {
	Search        string `form:"search"`
	RawMaterial   string `form:"rawMaterial"`
	ServiceStatus string `form:"serviceStatus" binding:"omitempty,servicestatus"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page          int    `form:"page,default=1" binding:"min=0"`
	PerPage       int    `form:"perPage" binding:"min=0,max=100"`
}

// PurchaseResponse defines the data returned for a purchase. Money is sent both
// as an exact decimal and as a display string.
type PurchaseResponse struct {
	PurchaseID         string               `json:"purchaseID"`
	Code               string               `json:"code"`
	SupplierID         string               `json:"supplierID"`
	SupplierName       string               `json:"supplierName,omitempty"`
	RawMaterial        string               `json:"rawMaterial"`
	PurchaseDate       Date                 `json:"purchaseDate"`
	TotalCost          decimal.Decimal      `json:"totalCost"`
	Advance            decimal.Decimal      `json:"advance"`
	Balance            decimal.Decimal      `json:"balance"`
	TotalCostDisplay   string               `json:"totalCostDisplay"`
	AdvanceDisplay     string               `json:"advanceDisplay"`
	BalanceDisplay     string               `json:"balanceDisplay"`
	InvoiceCode        *string              `json:"invoiceCode,omitempty"`
	InvoiceDate        *Date                `json:"invoiceDate,omitempty"`
	ServiceOrderCode   *string              `json:"serviceOrderCode,omitempty"`
	Notes              *string              `json:"notes,omitempty"`
	ServiceStatus      domain.ServiceStatus `json:"serviceStatus"`
	CarrierID          *string              `json:"carrierID"`
	CarrierName        string               `json:"carrierName,omitempty"`
	TransportStartDate *Date                `json:"transportStartDate"`
	TransportEndDate   *Date                `json:"transportEndDate"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy      string               `json:"lastUpdatedBy"`
}

// ListPurchasesResponse is one page of purchases, newest code first.
type ListPurchasesResponse struct {
	Items []PurchaseResponse `json:"items"`
	pagination.Page
}

// ServiceStatusesResponse lists the workflow stages in order.
type ServiceStatusesResponse struct {
	Statuses []domain.ServiceStatus `json:"statuses"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:         p.PurchaseID,
		Code:               p.Code,
		SupplierID:         p.SupplierID,
		RawMaterial:        p.RawMaterial,
		PurchaseDate:       NewDate(p.PurchaseDate),
		TotalCost:          p.TotalCost,
		Advance:            p.Advance,
		Balance:            p.Balance,
		TotalCostDisplay:   utils.FormatSoles(p.TotalCost),
		AdvanceDisplay:     utils.FormatSoles(p.Advance),
		BalanceDisplay:     utils.FormatSoles(p.Balance),
		InvoiceCode:        p.InvoiceCode,
		InvoiceDate:        datePtr(p.InvoiceDate),
		ServiceOrderCode:   p.ServiceOrderCode,
		Notes:              p.Notes,
		ServiceStatus:      p.ServiceStatus,
		CarrierID:          p.CarrierID,
		TransportStartDate: datePtr(p.TransportStartDate),
		TransportEndDate:   datePtr(p.TransportEndDate),
		CreatedAt:          p.CreatedAt,
		CreatedBy:          p.CreatedBy,
		LastUpdatedAt:      p.LastUpdatedAt,
		LastUpdatedBy:      p.LastUpdatedBy,
	}
}
