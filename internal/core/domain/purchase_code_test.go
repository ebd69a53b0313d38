package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextPurchaseCode(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "first purchase of the year", existing: nil, want: "ALM-25-0001"},
		{name: "second purchase", existing: []string{"ALM-25-0001"}, want: "ALM-25-0002"},
		{name: "previous year codes are ignored", existing: []string{"ALM-24-0099"}, want: "ALM-25-0001"},
		{name: "max wins regardless of order", existing: []string{"ALM-25-0007", "ALM-25-0012", "ALM-25-0003"}, want: "ALM-25-0013"},
		{name: "non numeric suffix skipped", existing: []string{"ALM-25-abcd", "ALM-25-0004"}, want: "ALM-25-0005"},
		{name: "fallback style code counts", existing: []string{"ALM-25-4821"}, want: "ALM-25-4822"},
		{name: "past four digits keeps growing", existing: []string{"ALM-25-9999"}, want: "ALM-25-10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextPurchaseCode("ALM", "25", tt.existing))
		})
	}
}

func TestNextPurchaseCode_StrictlyIncreasing(t *testing.T) {
	var issued []string
	for i := 0; i < 25; i++ {
		next := domain.NextPurchaseCode("ALM", "25", issued)
		if len(issued) > 0 {
			assert.Greater(t, next, issued[len(issued)-1])
		}
		assert.NotContains(t, issued, next)
		issued = append(issued, next)
	}
	assert.Equal(t, "ALM-25-0025", issued[24])
}

func TestParsePurchaseCodeSequence(t *testing.T) {
	n, ok := domain.ParsePurchaseCodeSequence("ALM-25-", "ALM-25-0042")
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	_, ok = domain.ParsePurchaseCodeSequence("ALM-25-", "XYZ-25-0042")
	assert.False(t, ok)
}

func TestYearSuffix(t *testing.T) {
	assert.Equal(t, "25", domain.YearSuffix(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "05", domain.YearSuffix(time.Date(2105, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFallbackPurchaseCode(t *testing.T) {
	now := time.UnixMilli(1735689601234).UTC() // 2025-01-01
	assert.Equal(t, "ALM-25-1234", domain.FallbackPurchaseCode("ALM", now))
}
