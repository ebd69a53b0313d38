package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SolesSymbol prefixes every displayed amount.
const SolesSymbol = "S/. "

// displayPrecision is the number of decimals shown for money. Stored values keep full precision.
const displayPrecision = 2

var solesPrinter = message.NewPrinter(language.MustParse("es-PE"))

// FormatWithPrecision rounds an amount to the given number of decimals.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatSoles renders an amount for display in Peruvian soles, e.g. "S/. 1,234.50".
// Only the integer part goes through the locale printer, so no digits are lost.
func FormatSoles(amount decimal.Decimal) string {
	fixed := amount.StringFixed(displayPrecision)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return SolesSymbol + sign + fixed
	}
	return SolesSymbol + sign + solesPrinter.Sprintf("%d", n) + "." + frac
}
