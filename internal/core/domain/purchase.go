package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Purchase is a raw-material acquisition (compra) with its transport cost and
// optional carrier assignment.
type Purchase struct {
	PurchaseID       string          `json:"purchaseID"`
	Code             string          `json:"code"`
	SupplierID       string          `json:"supplierID"`
	RawMaterial      string          `json:"rawMaterial"`
	PurchaseDate     time.Time       `json:"purchaseDate"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	Advance          decimal.Decimal `json:"advance"`
	Balance          decimal.Decimal `json:"balance"`
	InvoiceCode      *string         `json:"invoiceCode,omitempty"`
	InvoiceDate      *time.Time      `json:"invoiceDate,omitempty"`
	ServiceOrderCode *string         `json:"serviceOrderCode,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	ServiceStatus    ServiceStatus   `json:"serviceStatus"`

	CarrierID          *string    `json:"carrierID,omitempty"`
	TransportStartDate *time.Time `json:"transportStartDate,omitempty"`
	TransportEndDate   *time.Time `json:"transportEndDate,omitempty"`
	AuditFields
}

// GetID satisfies entitycache.Identifiable.
func (p Purchase) GetID() string { return p.PurchaseID }

// RecomputeBalance derives the balance from cost and advance. Negative results are kept.
func (p *Purchase) RecomputeBalance() {
	p.Balance = p.TotalCost.Sub(p.Advance)
}

// HasTransport reports whether a carrier is attached.
func (p *Purchase) HasTransport() bool {
	return p.CarrierID != nil
}

// AssignTransport attaches a carrier and its service window.
func (p *Purchase) AssignTransport(carrierID string, start, end time.Time) error {
	if err := validateWindow(&start, &end); err != nil {
		return err
	}
	p.CarrierID = &carrierID
	p.TransportStartDate = &start
	p.TransportEndDate = &end
	return nil
}

// ClearTransport detaches the carrier and both dates.
func (p *Purchase) ClearTransport() {
	p.CarrierID = nil
	p.TransportStartDate = nil
	p.TransportEndDate = nil
}

// ValidateTransportWindow checks that the end date is not before the start date.
func (p *Purchase) ValidateTransportWindow() error {
	return validateWindow(p.TransportStartDate, p.TransportEndDate)
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: transport end date must not be before start date", apperrors.ErrValidation)
	}
	return nil
}

// Validate checks the invariants that hold for every stored purchase.
func (p *Purchase) Validate() error {
	if strings.TrimSpace(p.SupplierID) == "" {
		return fmt.Errorf("%w: supplier is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(p.RawMaterial) == "" {
		return fmt.Errorf("%w: raw material is required", apperrors.ErrValidation)
	}
	if p.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", apperrors.ErrValidation)
	}
	if p.TotalCost.IsNegative() {
		return fmt.Errorf("%w: total cost must not be negative", apperrors.ErrValidation)
	}
	if p.Advance.IsNegative() {
		return fmt.Errorf("%w: advance must not be negative", apperrors.ErrValidation)
	}
	if !p.ServiceStatus.IsValid() {
		return fmt.Errorf("%w: unknown service status %q", apperrors.ErrValidation, p.ServiceStatus)
	}
	return p.ValidateTransportWindow()
}
