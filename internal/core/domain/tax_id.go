package domain

import (
	"fmt"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
)

// Default identifier lengths used in Peru.
const (
	DefaultTaxIDLength         = 11 // RUC
	DefaultInterbankCodeLength = 20 // CCI
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateTaxID checks that id is exactly length ASCII digits.
func ValidateTaxID(id string, length int) error {
	if len(id) != length || !isDigits(id) {
		return fmt.Errorf("%w: tax ID must be exactly %d digits", apperrors.ErrValidation, length)
	}
	return nil
}

// ValidateInterbankCode checks that code is exactly length ASCII digits.
func ValidateInterbankCode(code string, length int) error {
	if len(code) != length || !isDigits(code) {
		return fmt.Errorf("%w: interbank code must be exactly %d digits", apperrors.ErrValidation, length)
	}
	return nil
}
