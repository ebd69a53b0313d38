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

// carrierService mirrors supplierService for carriers, which also carry bank details.
type carrierService struct {
	BaseService
	carrierRepo         portsrepo.CarrierRepositoryFacade
	cache               *entitycache.Cache[domain.Carrier]
	taxIDLength         int
	interbankCodeLength int
	paging              pagination.Limits
}

// CarrierServiceOption is a functional option for configuring the carrier service
type CarrierServiceOption func(*carrierService)

// WithCarrierFieldLengths overrides the tax ID and interbank code lengths.
func WithCarrierFieldLengths(taxIDLength, interbankCodeLength int) CarrierServiceOption {
	return func(s *carrierService) {
		if taxIDLength > 0 {
			s.taxIDLength = taxIDLength
		}
		if interbankCodeLength > 0 {
			s.interbankCodeLength = interbankCodeLength
		}
	}
}

// WithCarrierPaging sets the default and maximum page size of ListCarriers.
func WithCarrierPaging(limits pagination.Limits) CarrierServiceOption {
	return func(s *carrierService) {
		s.paging = limits
	}
}

// WithCarrierClock replaces time.Now for audit timestamps.
func WithCarrierClock(now func() time.Time) CarrierServiceOption {
	return func(s *carrierService) {
		s.now = now
	}
}

// NewCarrierService creates a new carrier service with the provided options
func NewCarrierService(repo portsrepo.CarrierRepositoryFacade, options ...CarrierServiceOption) portssvc.CarrierSvcFacade {
	svc := &carrierService{
		carrierRepo:         repo,
		cache:               entitycache.New[domain.Carrier](),
		taxIDLength:         domain.DefaultTaxIDLength,
		interbankCodeLength: domain.DefaultInterbankCodeLength,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CarrierSvcFacade = (*carrierService)(nil)

func (s *carrierService) refresh(ctx context.Context) error {
	carriers, err := s.carrierRepo.ListCarriers(ctx)
	if err != nil {
		s.cache.RecordError(err)
		s.LogError(ctx, err, "Failed to refresh carrier cache")
		return fmt.Errorf("failed to list carriers: %w", err)
	}
	s.cache.Replace(carriers)
	return nil
}

func (s *carrierService) ensureLoaded(ctx context.Context) error {
	if s.cache.Loaded() {
		return nil
	}
	return s.refresh(ctx)
}

func (s *carrierService) ListCarriers(ctx context.Context, params dto.ListCarriersParams) (*dto.ListCarriersResponse, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	matched := make([]domain.Carrier, 0)
	for _, c := range s.cache.All() {
		if search.Contains(params.Search, c.Name, c.TaxID) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return search.Fold(matched[i].Name) < search.Fold(matched[j].Name)
	})

	page, perPage := s.paging.Normalize(params.Page, params.PerPage)
	items, meta := pagination.Paginate(matched, page, perPage)
	return &dto.ListCarriersResponse{
		Items: dto.ToCarrierResponses(items),
		Page:  meta,
	}, nil
}

func (s *carrierService) GetCarrierByID(ctx context.Context, carrierID string) (*domain.Carrier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	c, ok := s.cache.Get(carrierID)
	if !ok {
		return nil, fmt.Errorf("carrier %s: %w", carrierID, apperrors.ErrNotFound)
	}
	return &c, nil
}

func (s *carrierService) CachedCarriers(ctx context.Context) ([]domain.Carrier, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.cache.All(), nil
}

func (s *carrierService) CarrierCacheStatus() entitycache.Status {
	return s.cache.Status()
}

func (s *carrierService) checkTaxIDAvailable(ctx context.Context, taxID, selfID string) error {
	existing, err := s.carrierRepo.FindCarrierByTaxID(ctx, taxID)
	switch {
	case err == nil:
		if existing.CarrierID == selfID {
			return nil
		}
		return fmt.Errorf("carrier with tax ID %s already exists: %w", taxID, apperrors.ErrDuplicate)
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check carrier tax ID: %w", err)
	}
}

// validateBankDetails checks the account type and the optional interbank code.
func (s *carrierService) validateBankDetails(c *domain.Carrier) error {
	if !c.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, c.AccountType)
	}
	if strings.TrimSpace(c.AccountNumber) == "" {
		return fmt.Errorf("%w: account number is required", apperrors.ErrValidation)
	}
	if c.InterbankCode != nil {
		return domain.ValidateInterbankCode(*c.InterbankCode, s.interbankCodeLength)
	}
	return nil
}

func (s *carrierService) CreateCarrier(ctx context.Context, req dto.CreateCarrierRequest, userID string) (*domain.Carrier, error) {
	carrier := domain.Carrier{
		CarrierID:     uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		TaxID:         strings.TrimSpace(req.TaxID),
		AccountType:   req.AccountType,
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		InterbankCode: trimmedOrNil(req.InterbankCode),
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if carrier.Name == "" {
		return nil, fmt.Errorf("%w: carrier name is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateTaxID(carrier.TaxID, s.taxIDLength); err != nil {
		return nil, err
	}
	if err := s.validateBankDetails(&carrier); err != nil {
		return nil, err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := s.checkTaxIDAvailable(ctx, carrier.TaxID, ""); err != nil {
		s.LogError(ctx, err, "Carrier tax ID rejected", slog.String("tax_id", carrier.TaxID))
		return nil, err
	}

	if err := s.carrierRepo.SaveCarrier(ctx, carrier); err != nil {
		s.LogError(ctx, err, "Failed to save carrier", slog.String("tax_id", carrier.TaxID))
		return nil, err
	}
	s.cache.Put(carrier)

	s.LogInfo(ctx, "Carrier created successfully", slog.String("carrier_id", carrier.CarrierID))
	return &carrier, nil
}

func (s *carrierService) UpdateCarrier(ctx context.Context, carrierID string, req dto.UpdateCarrierRequest, userID string) (*domain.Carrier, error) {
	current, err := s.GetCarrierByID(ctx, carrierID)
	if err != nil {
		return nil, err
	}
	updated := *current

	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
		if updated.Name == "" {
			return nil, fmt.Errorf("%w: carrier name is required", apperrors.ErrValidation)
		}
	}
	if req.AccountType != nil {
		updated.AccountType = *req.AccountType
	}
	if req.AccountNumber != nil {
		updated.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.InterbankCode != nil {
		// An empty string clears the interbank code.
		updated.InterbankCode = trimmedOrNil(req.InterbankCode)
	}
	if err := s.validateBankDetails(&updated); err != nil {
		return nil, err
	}
	if req.TaxID != nil {
		taxID := strings.TrimSpace(*req.TaxID)
		if err := domain.ValidateTaxID(taxID, s.taxIDLength); err != nil {
			return nil, err
		}
		if taxID != current.TaxID {
			if err := s.checkTaxIDAvailable(ctx, taxID, carrierID); err != nil {
				return nil, err
			}
		}
		updated.TaxID = taxID
	}
	updated.Touch(userID, s.Now())

	if err := s.carrierRepo.UpdateCarrier(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update carrier", slog.String("carrier_id", carrierID))
		return nil, err
	}
	s.cache.Put(updated)

	s.LogInfo(ctx, "Carrier updated successfully", slog.String("carrier_id", carrierID))
	return &updated, nil
}

func (s *carrierService) DeleteCarrier(ctx context.Context, carrierID string, userID string) error {
	if err := s.carrierRepo.DeleteCarrier(ctx, carrierID); err != nil {
		s.LogError(ctx, err, "Failed to delete carrier", slog.String("carrier_id", carrierID))
		return err
	}
	s.cache.Remove(carrierID)
	s.LogInfo(ctx, "Carrier deleted", slog.String("carrier_id", carrierID), slog.String("user_id", userID))
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
