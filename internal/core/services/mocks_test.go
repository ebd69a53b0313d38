package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Supplier repository ---

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindSupplierByTaxID(ctx context.Context, taxID string) (*domain.Supplier, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	return m.Called(ctx, supplierID).Error(0)
}

// --- Carrier repository ---

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindCarrierByTaxID(ctx context.Context, taxID string) (*domain.Carrier, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) SaveCarrier(ctx context.Context, carrier domain.Carrier) error {
	return m.Called(ctx, carrier).Error(0)
}

func (m *MockCarrierRepository) UpdateCarrier(ctx context.Context, carrier domain.Carrier) error {
	return m.Called(ctx, carrier).Error(0)
}

func (m *MockCarrierRepository) DeleteCarrier(ctx context.Context, carrierID string) error {
	return m.Called(ctx, carrierID).Error(0)
}

// --- Purchase repository ---

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindLatestPurchaseCode(ctx context.Context, codePrefix string) (string, error) {
	args := m.Called(ctx, codePrefix)
	return args.String(0), args.Error(1)
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *MockPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *MockPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	return m.Called(ctx, purchaseID).Error(0)
}

// --- User repository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUserName(ctx context.Context, userID, name string, updatedAt time.Time) error {
	return m.Called(ctx, userID, name, updatedAt).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, expiry).Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Sequence and revocation fakes ---

// fakeSequence counts per prefix in memory.
type fakeSequence struct {
	counters map[string]int64
	err      error
}

func newFakeSequence() *fakeSequence {
	return &fakeSequence{counters: map[string]int64{}}
}

func (f *fakeSequence) NextSequence(_ context.Context, codePrefix string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counters[codePrefix]++
	return f.counters[codePrefix], nil
}

type fakeRevocations struct {
	revoked map[string]time.Duration
}

func (f *fakeRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	f.revoked[tokenID] = ttl
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := f.revoked[tokenID]
	return ok, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
