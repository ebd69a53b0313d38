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
	"github.com/shopspring/decimal"
)

// purchaseService implements the PurchaseSvcFacade interface
type purchaseService struct {
	BaseService
	purchaseRepo    portsrepo.PurchaseRepositoryFacade
	codeGenerator   portssvc.PurchaseCodeGenerator
	supplierService portssvc.SupplierReaderSvc
	carrierService  portssvc.CarrierReaderSvc
	cache           *entitycache.Cache[domain.Purchase]
	paging          pagination.Limits
}

// PurchaseServiceOption is a functional option for configuring the purchase service
type PurchaseServiceOption func(*purchaseService)

// WithSupplierLookup lets the service resolve supplier names and check references.
func WithSupplierLookup(svc portssvc.SupplierReaderSvc) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.supplierService = svc
	}
}

// WithCarrierLookup lets the service resolve carrier names and check references.
func WithCarrierLookup(svc portssvc.CarrierReaderSvc) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.carrierService = svc
	}
}

// WithPurchasePaging sets the default and maximum page size of ListPurchases.
func WithPurchasePaging(limits pagination.Limits) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.paging = limits
	}
}

// WithPurchaseClock replaces time.Now for audit timestamps.
func WithPurchaseClock(now func() time.Time) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.now = now
	}
}

// NewPurchaseService creates a new purchase service with the provided options
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, codes portssvc.PurchaseCodeGenerator, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		purchaseRepo:  repo,
		codeGenerator: codes,
		cache:         entitycache.New[domain.Purchase](),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) refresh(ctx context.Context) error {
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.cache.RecordError(err)
		s.LogError(ctx, err, "Failed to refresh purchase cache")
		return fmt.Errorf("failed to list purchases: %w", err)
	}
	s.cache.Replace(purchases)
	return nil
}

func (s *purchaseService) ensureLoaded(ctx context.Context) error {
	if s.cache.Loaded() {
		return nil
	}
	return s.refresh(ctx)
}

// purchaseFilter is the parsed form of dto.ListPurchasesParams.
type purchaseFilter struct {
	search      string
	rawMaterial string
	status      domain.ServiceStatus
	from, to    *time.Time
}

func parsePurchaseFilter(params dto.ListPurchasesParams) (purchaseFilter, error) {
	f := purchaseFilter{
		search:      params.Search,
		rawMaterial: params.RawMaterial,
		status:      domain.ServiceStatus(params.ServiceStatus),
	}
	if f.status != "" && !f.status.IsValid() {
		return f, fmt.Errorf("%w: unknown service status %q", apperrors.ErrValidation, params.ServiceStatus)
	}
	if params.From != "" {
		t, err := dto.ParseDate(params.From)
		if err != nil {
			return f, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		f.from = &t
	}
	if params.To != "" {
		t, err := dto.ParseDate(params.To)
		if err != nil {
			return f, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		f.to = &t
	}
	return f, nil
}

// partyNames indexes supplier and carrier names and tax IDs by ID.
type partyNames struct {
	suppliers map[string]domain.Supplier
	carriers  map[string]domain.Carrier
}

func (s *purchaseService) loadPartyNames(ctx context.Context) (partyNames, error) {
	names := partyNames{
		suppliers: map[string]domain.Supplier{},
		carriers:  map[string]domain.Carrier{},
	}
	if s.supplierService != nil {
		suppliers, err := s.supplierService.CachedSuppliers(ctx)
		if err != nil {
			return names, err
		}
		for _, sup := range suppliers {
			names.suppliers[sup.SupplierID] = sup
		}
	}
	if s.carrierService != nil {
		carriers, err := s.carrierService.CachedCarriers(ctx)
		if err != nil {
			return names, err
		}
		for _, c := range carriers {
			names.carriers[c.CarrierID] = c
		}
	}
	return names, nil
}

func (f purchaseFilter) matches(p domain.Purchase, names partyNames) bool {
	if f.status != "" && p.ServiceStatus != f.status {
		return false
	}
	if f.from != nil && p.PurchaseDate.Before(*f.from) {
		return false
	}
	if f.to != nil && p.PurchaseDate.After(*f.to) {
		return false
	}
	if !search.Contains(f.rawMaterial, p.RawMaterial) {
		return false
	}
	if f.search == "" {
		return true
	}
	haystacks := []string{p.Code, p.RawMaterial}
	if sup, ok := names.suppliers[p.SupplierID]; ok {
		haystacks = append(haystacks, sup.Name, sup.TaxID)
	}
	if p.CarrierID != nil {
		if c, ok := names.carriers[*p.CarrierID]; ok {
			haystacks = append(haystacks, c.Name, c.TaxID)
		}
	}
	return search.Contains(f.search, haystacks...)
}

func (s *purchaseService) ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	filter, err := parsePurchaseFilter(params)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	names, err := s.loadPartyNames(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load supplier and carrier names for purchase list")
		return nil, err
	}

	matched := make([]domain.Purchase, 0)
	for _, p := range s.cache.All() {
		if filter.matches(p, names) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return codeAfter(matched[i].Code, matched[j].Code)
	})

	page, perPage := s.paging.Normalize(params.Page, params.PerPage)
	items, meta := pagination.Paginate(matched, page, perPage)

	resp := &dto.ListPurchasesResponse{
		Items: make([]dto.PurchaseResponse, len(items)),
		Page:  meta,
	}
	for i := range items {
		r := dto.ToPurchaseResponse(&items[i])
		if sup, ok := names.suppliers[items[i].SupplierID]; ok {
			r.SupplierName = sup.Name
		}
		if items[i].CarrierID != nil {
			if c, ok := names.carriers[*items[i].CarrierID]; ok {
				r.CarrierName = c.Name
			}
		}
		resp.Items[i] = r
	}
	return resp, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	p, ok := s.cache.Get(purchaseID)
	if !ok {
		return nil, fmt.Errorf("purchase %s: %w", purchaseID, apperrors.ErrNotFound)
	}
	return &p, nil
}

func (s *purchaseService) PurchaseCacheStatus() entitycache.Status {
	return s.cache.Status()
}

// checkSupplierExists reports a missing supplier as a validation error.
func (s *purchaseService) checkSupplierExists(ctx context.Context, supplierID string) error {
	if s.supplierService == nil {
		return nil
	}
	if _, err := s.supplierService.GetSupplierByID(ctx, supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, supplierID)
		}
		return err
	}
	return nil
}

func (s *purchaseService) checkCarrierExists(ctx context.Context, carrierID string) error {
	if s.carrierService == nil {
		return nil
	}
	if _, err := s.carrierService.GetCarrierByID(ctx, carrierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: carrier %s does not exist", apperrors.ErrValidation, carrierID)
		}
		return err
	}
	return nil
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error) {
	if req.PurchaseDate == nil || req.TotalCost == nil {
		return nil, fmt.Errorf("%w: purchase date and total cost are required", apperrors.ErrValidation)
	}
	advance := decimal.Zero
	if req.Advance != nil {
		advance = *req.Advance
	}

	purchase := domain.Purchase{
		PurchaseID:       uuid.NewString(),
		SupplierID:       strings.TrimSpace(req.SupplierID),
		RawMaterial:      strings.TrimSpace(req.RawMaterial),
		PurchaseDate:     domain.TruncateToDate(req.PurchaseDate.Time),
		TotalCost:        *req.TotalCost,
		Advance:          advance,
		InvoiceCode:      trimmedOrNil(req.InvoiceCode),
		InvoiceDate:      req.InvoiceDate.Ptr(),
		ServiceOrderCode: trimmedOrNil(req.ServiceOrderCode),
		Notes:            trimmedOrNil(req.Notes),
		ServiceStatus:    req.ServiceStatus,
		AuditFields:      domain.NewAuditFields(userID, s.Now()),
	}
	purchase.RecomputeBalance()
	if err := purchase.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkSupplierExists(ctx, purchase.SupplierID); err != nil {
		return nil, err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	code, err := s.codeGenerator.NextCode(ctx)
	if err != nil {
		return nil, err
	}
	purchase.Code = code

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("code", code))
		return nil, err
	}
	s.cache.Put(purchase)

	s.LogInfo(ctx, "Purchase created successfully",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("code", purchase.Code))
	return &purchase, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, userID string) (*domain.Purchase, error) {
	current, err := s.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	updated := *current

	if req.SupplierID != nil && *req.SupplierID != current.SupplierID {
		if err := s.checkSupplierExists(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
		updated.SupplierID = *req.SupplierID
	}
	if req.RawMaterial != nil {
		updated.RawMaterial = strings.TrimSpace(*req.RawMaterial)
	}
	if req.PurchaseDate != nil {
		updated.PurchaseDate = domain.TruncateToDate(req.PurchaseDate.Time)
	}
	if req.InvoiceCode != nil {
		updated.InvoiceCode = trimmedOrNil(req.InvoiceCode)
	}
	if req.InvoiceDate != nil {
		updated.InvoiceDate = req.InvoiceDate.Ptr()
	}
	if req.ServiceOrderCode != nil {
		updated.ServiceOrderCode = trimmedOrNil(req.ServiceOrderCode)
	}
	if req.Notes != nil {
		updated.Notes = trimmedOrNil(req.Notes)
	}
	if req.ServiceStatus != nil {
		updated.ServiceStatus = *req.ServiceStatus
	}
	if req.TotalCost != nil || req.Advance != nil {
		if req.TotalCost != nil {
			updated.TotalCost = *req.TotalCost
		}
		if req.Advance != nil {
			updated.Advance = *req.Advance
		}
		updated.RecomputeBalance()
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	return s.write(ctx, updated, userID, "Purchase updated successfully")
}

// write persists p and patches the cache.
func (s *purchaseService) write(ctx context.Context, p domain.Purchase, userID, msg string) (*domain.Purchase, error) {
	p.Touch(userID, s.Now())
	if err := s.purchaseRepo.UpdatePurchase(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to update purchase", slog.String("purchase_id", p.PurchaseID))
		return nil, err
	}
	s.cache.Put(p)
	s.LogInfo(ctx, msg, slog.String("purchase_id", p.PurchaseID))
	return &p, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string, userID string) error {
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", purchaseID))
		return err
	}
	s.cache.Remove(purchaseID)
	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", purchaseID), slog.String("user_id", userID))
	return nil
}

func (s *purchaseService) AssignTransport(ctx context.Context, purchaseID string, req dto.AssignTransportRequest, userID string) (*domain.Purchase, error) {
	if req.StartDate == nil || req.EndDate == nil || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: transport start and end dates are required", apperrors.ErrValidation)
	}
	current, err := s.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCarrierExists(ctx, req.CarrierID); err != nil {
		return nil, err
	}

	updated := *current
	start := domain.TruncateToDate(req.StartDate.Time)
	end := domain.TruncateToDate(req.EndDate.Time)
	if err := updated.AssignTransport(req.CarrierID, start, end); err != nil {
		return nil, err
	}
	return s.write(ctx, updated, userID, "Transport assigned to purchase")
}

func (s *purchaseService) UnassignTransport(ctx context.Context, purchaseID string, userID string) (*domain.Purchase, error) {
	current, err := s.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.ClearTransport()
	return s.write(ctx, updated, userID, "Transport removed from purchase")
}

// codeAfter orders purchase codes newest first. Longer sequence numbers are newer,
// so length is compared before the text.
func codeAfter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}
