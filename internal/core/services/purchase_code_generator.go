package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
)

// purchaseCodeGenerator builds PREFIX-YY-NNNN codes from an atomic sequence.
type purchaseCodeGenerator struct {
	BaseService
	sequence portsrepo.PurchaseCodeSequence
	prefix   string
}

// CodeGeneratorOption is a functional option for configuring the code generator
type CodeGeneratorOption func(*purchaseCodeGenerator)

// WithCodeGeneratorClock replaces time.Now when deriving the year suffix.
func WithCodeGeneratorClock(now func() time.Time) CodeGeneratorOption {
	return func(g *purchaseCodeGenerator) {
		g.now = now
	}
}

// NewPurchaseCodeGenerator creates a generator for codes starting with prefix.
func NewPurchaseCodeGenerator(sequence portsrepo.PurchaseCodeSequence, prefix string, options ...CodeGeneratorOption) portssvc.PurchaseCodeGenerator {
	if prefix == "" {
		prefix = domain.DefaultPurchaseCodePrefix
	}
	g := &purchaseCodeGenerator{
		sequence: sequence,
		prefix:   prefix,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

var _ portssvc.PurchaseCodeGenerator = (*purchaseCodeGenerator)(nil)

// NextCode returns the next code for the current year. When the sequence store is
// unreachable a timestamp-based code is returned instead; the unique index on
// purchase codes rejects the rare collision this can cause.
func (g *purchaseCodeGenerator) NextCode(ctx context.Context) (string, error) {
	now := g.Now()
	yearPrefix := domain.PurchaseCodePrefix(g.prefix, domain.YearSuffix(now))

	if g.sequence == nil {
		return domain.FallbackPurchaseCode(g.prefix, now), nil
	}

	seq, err := g.sequence.NextSequence(ctx, yearPrefix)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			code := domain.FallbackPurchaseCode(g.prefix, now)
			g.LogWarn(ctx, "Purchase code sequence unavailable, using fallback code",
				slog.String("error", err.Error()),
				slog.String("code", code))
			return code, nil
		}
		g.LogError(ctx, err, "Failed to advance purchase code sequence", slog.String("prefix", yearPrefix))
		return "", fmt.Errorf("failed to generate purchase code: %w", err)
	}
	return domain.FormatPurchaseCode(yearPrefix, seq), nil
}
