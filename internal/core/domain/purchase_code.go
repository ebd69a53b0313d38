package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPurchaseCodePrefix is the company prefix used in purchase codes (ALM-25-0001).
const DefaultPurchaseCodePrefix = "ALM"

const purchaseCodeDigits = 4

// YearSuffix returns the two-digit calendar year of t.
func YearSuffix(t time.Time) string {
	return fmt.Sprintf("%02d", t.Year()%100)
}

// PurchaseCodePrefix returns the per-year code prefix, e.g. "ALM-25-".
func PurchaseCodePrefix(prefix, yearSuffix string) string {
	return prefix + "-" + yearSuffix + "-"
}

// FormatPurchaseCode renders a code from its year prefix and sequence number.
// Sequences beyond 9999 keep all their digits.
func FormatPurchaseCode(yearPrefix string, seq int64) string {
	return fmt.Sprintf("%s%0*d", yearPrefix, purchaseCodeDigits, seq)
}

// ParsePurchaseCodeSequence extracts the numeric suffix of code when it belongs to yearPrefix.
func ParsePurchaseCodeSequence(yearPrefix, code string) (int64, bool) {
	if !strings.HasPrefix(code, yearPrefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(code[len(yearPrefix):], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MaxPurchaseCodeSequence returns the highest suffix among codes for yearPrefix, or 0.
func MaxPurchaseCodeSequence(yearPrefix string, existingCodes []string) int64 {
	var maxSeq int64
	for _, code := range existingCodes {
		if n, ok := ParsePurchaseCodeSequence(yearPrefix, code); ok && n > maxSeq {
			maxSeq = n
		}
	}
	return maxSeq
}

// NextPurchaseCode returns the next unused code for the year given the codes already issued.
func NextPurchaseCode(prefix, yearSuffix string, existingCodes []string) string {
	yearPrefix := PurchaseCodePrefix(prefix, yearSuffix)
	return FormatPurchaseCode(yearPrefix, MaxPurchaseCodeSequence(yearPrefix, existingCodes)+1)
}

// FallbackPurchaseCode builds a code from the low-order digits of the millisecond clock.
// It is not collision safe and is only used when the sequence store cannot be reached.
func FallbackPurchaseCode(prefix string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > purchaseCodeDigits {
		ms = ms[len(ms)-purchaseCodeDigits:]
	}
	return PurchaseCodePrefix(prefix, YearSuffix(now)) + ms
}
