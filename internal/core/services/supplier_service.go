package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portsrepo "github.com/SscSPs/almacen_erp_lite/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/entitycache"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/pagination"
	"github.com/SscSPs/almacen_erp_lite/internal/utils/search"
	"github.com/google/uuid"
)

// supplierService keeps the supplier list in memory and patches it after each write.
type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
	cache        *entitycache.Cache[domain.Supplier]
	taxIDLength  int
	paging       pagination.Limits
}

// SupplierServiceOption is a functional option for configuring the supplier service
type SupplierServiceOption func(*supplierService)

// WithSupplierTaxIDLength overrides the required tax ID length.
func WithSupplierTaxIDLength(n int) SupplierServiceOption {
	return func(s *supplierService) {
		if n > 0 {
			s.taxIDLength = n
		}
	}
}

// WithSupplierPaging sets the default and maximum page size of ListSuppliers.
func WithSupplierPaging(limits pagination.Limits) SupplierServiceOption {
	return func(s *supplierService) {
		s.paging = limits
	}
}

// WithSupplierClock replaces time.Now for audit timestamps.
func WithSupplierClock(now func() time.Time) SupplierServiceOption {
	return func(s *supplierService) {
		s.now = now
	}
}

// NewSupplierService creates a new supplier service with the provided options
func NewSupplierService(repo portsrepo.SupplierRepositoryFacade, options ...SupplierServiceOption) portssvc.SupplierSvcFacade {
	svc := &supplierService{
		supplierRepo: repo,
		cache:        entitycache.New[domain.Supplier](),
		taxIDLength:  domain.DefaultTaxIDLength,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) refresh(ctx context.Context) error {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.cache.RecordError(err)
		s.LogError(ctx, err, "Failed to refresh supplier cache")
		return fmt.Errorf("failed to list suppliers: %w", err)
	}
	s.cache.Replace(suppliers)
	s.LogDebug(ctx, "Supplier cache refreshed", slog.Int("count", len(suppliers)))
	return nil
}

func (s *supplierService) ensureLoaded(ctx context.Context) error {
	if s.cache.Loaded() {
		return nil
	}
	return s.refresh(ctx)
}

func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) (*dto.ListSuppliersResponse, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	matched := make([]domain.Supplier, 0)
	for _, sup := range s.cache.All() {
		if search.Contains(params.Search, sup.Name, sup.TaxID) {
			matched = append(matched, sup)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return search.Fold(matched[i].Name) < search.Fold(matched[j].Name)
	})

	page, perPage := s.paging.Normalize(params.Page, params.PerPage)
	items, meta := pagination.Paginate(matched, page, perPage)
	return &dto.ListSuppliersResponse{
		Items: dto.ToSupplierResponses(items),
		Page:  meta,
	}, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	sup, ok := s.cache.Get(supplierID)
	if !ok {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, apperrors.ErrNotFound)
	}
	return &sup, nil
}

func (s *supplierService) CachedSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.cache.All(), nil
}

func (s *supplierService) SupplierCacheStatus() entitycache.Status {
	return s.cache.Status()
}

// checkTaxIDAvailable fails with ErrDuplicate when another supplier already holds taxID.
func (s *supplierService) checkTaxIDAvailable(ctx context.Context, taxID, selfID string) error {
	existing, err := s.supplierRepo.FindSupplierByTaxID(ctx, taxID)
	switch {
	case err == nil:
		if existing.SupplierID == selfID {
			return nil
		}
		return fmt.Errorf("supplier with tax ID %s already exists: %w", taxID, apperrors.ErrDuplicate)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check supplier tax ID: %w", err)
	}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	taxID := strings.TrimSpace(req.TaxID)
	if name == "" {
		return nil, fmt.Errorf("%w: supplier name is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateTaxID(taxID, s.taxIDLength); err != nil {
		return nil, err
	}
	// Load before patching so a later lazy load cannot drop this write.
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := s.checkTaxIDAvailable(ctx, taxID, ""); err != nil {
		s.LogError(ctx, err, "Supplier tax ID rejected", slog.String("tax_id", taxID))
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        name,
		TaxID:       taxID,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("tax_id", taxID))
		return nil, err
	}
	s.cache.Put(supplier)

	s.LogInfo(ctx, "Supplier created successfully", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	current, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	updated := *current

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: supplier name is required", apperrors.ErrValidation)
		}
		updated.Name = name
	}
	if req.TaxID != nil {
		taxID := strings.TrimSpace(*req.TaxID)
		if err := domain.ValidateTaxID(taxID, s.taxIDLength); err != nil {
			return nil, err
		}
		if taxID != current.TaxID {
			if err := s.checkTaxIDAvailable(ctx, taxID, supplierID); err != nil {
				return nil, err
			}
		}
		updated.TaxID = taxID
	}
	updated.Touch(userID, s.Now())

	if err := s.supplierRepo.UpdateSupplier(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	s.cache.Put(updated)

	s.LogInfo(ctx, "Supplier updated successfully", slog.String("supplier_id", supplierID))
	return &updated, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, userID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}
	s.cache.Remove(supplierID)
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID), slog.String("user_id", userID))
	return nil
}
