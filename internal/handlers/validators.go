package handlers

import (
	"fmt"
	"strings"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain tags used in request DTOs to gin's validator:
// taxid, interbank, servicestatus and accounttype.
func RegisterValidators(taxIDLength, interbankCodeLength int) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	validators := map[string]validator.Func{
		"taxid": func(fl validator.FieldLevel) bool {
			return domain.ValidateTaxID(fl.Field().String(), taxIDLength) == nil
		},
		// An empty interbank code means "none" and clears it on update.
		"interbank": func(fl validator.FieldLevel) bool {
			code := strings.TrimSpace(fl.Field().String())
			return code == "" || domain.ValidateInterbankCode(code, interbankCodeLength) == nil
		},
		"servicestatus": func(fl validator.FieldLevel) bool {
			return domain.ServiceStatus(fl.Field().String()).IsValid()
		},
		"accounttype": func(fl validator.FieldLevel) bool {
			return domain.AccountType(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}
