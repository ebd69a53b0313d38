package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/core/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	purchaseRepo *MockPurchaseRepository
	supplierRepo *MockSupplierRepository
	carrierRepo  *MockCarrierRepository
	sequence     *fakeSequence
	service      portssvc.PurchaseSvcFacade
	now          time.Time
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.purchaseRepo = new(MockPurchaseRepository)
	suite.supplierRepo = new(MockSupplierRepository)
	suite.carrierRepo = new(MockCarrierRepository)
	suite.sequence = newFakeSequence()
	suite.now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	suite.supplierRepo.On("ListSuppliers", mock.Anything).Return([]domain.Supplier{
		{SupplierID: "s-1", Name: "Agrícola Norte", TaxID: "20111111111"},
		{SupplierID: "s-2", Name: "Granos del Sur", TaxID: "20222222222"},
	}, nil).Maybe()
	suite.carrierRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{
		{CarrierID: "c-1", Name: "Transportes Lima", TaxID: "20333333333", AccountType: domain.AccountTypeSavings, AccountNumber: "1"},
	}, nil).Maybe()

	codes := services.NewPurchaseCodeGenerator(suite.sequence, "ALM", services.WithCodeGeneratorClock(fixedClock(suite.now)))
	suite.service = services.NewPurchaseService(
		suite.purchaseRepo,
		codes,
		services.WithSupplierLookup(services.NewSupplierService(suite.supplierRepo)),
		services.WithCarrierLookup(services.NewCarrierService(suite.carrierRepo)),
		services.WithPurchaseClock(fixedClock(suite.now)),
	)
}

func (suite *PurchaseServiceTestSuite) seedPurchases(purchases ...domain.Purchase) {
	suite.purchaseRepo.On("ListPurchases", mock.Anything).Return(purchases, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createRequest(total, advance string) dto.CreatePurchaseRequest {
	purchaseDate := dto.NewDate(date(2025, 5, 30))
	cost := dec(total)
	req := dto.CreatePurchaseRequest{
		SupplierID:    "s-1",
		RawMaterial:   "Maíz amarillo",
		PurchaseDate:  &purchaseDate,
		TotalCost:     &cost,
		ServiceStatus: domain.StatusAwaitingOrder,
	}
	if advance != "" {
		a := dec(advance)
		req.Advance = &a
	}
	return req
}

func storedPurchase(id, code string) domain.Purchase {
	return domain.Purchase{
		PurchaseID:    id,
		Code:          code,
		SupplierID:    "s-1",
		RawMaterial:   "Maíz amarillo",
		PurchaseDate:  date(2025, 5, 30),
		TotalCost:     dec("100"),
		Advance:       dec("30"),
		Balance:       dec("70"),
		ServiceStatus: domain.StatusAwaitingOrder,
	}
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_DerivesBalanceAndCode() {
	ctx := context.Background()
	suite.seedPurchases()
	suite.purchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Twice()

	first, err := suite.service.CreatePurchase(ctx, createRequest("100", "30"), "user-1")
	suite.Require().NoError(err)
	suite.Equal("ALM-25-0001", first.Code)
	suite.True(dec("70").Equal(first.Balance), first.Balance.String())

	second, err := suite.service.CreatePurchase(ctx, createRequest("40", ""), "user-1")
	suite.Require().NoError(err)
	suite.Equal("ALM-25-0002", second.Code)
	suite.True(second.Advance.IsZero())
	suite.True(dec("40").Equal(second.Balance))

	suite.Equal(2, suite.service.PurchaseCacheStatus().Count)
	suite.purchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnknownSupplier() {
	req := createRequest("100", "0")
	req.SupplierID = "s-404"

	_, err := suite.service.CreatePurchase(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.purchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
	suite.Empty(suite.sequence.counters)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NegativeCost() {
	_, err := suite.service.CreatePurchase(context.Background(), createRequest("-1", ""), "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_RecomputesBalance() {
	ctx := context.Background()
	suite.seedPurchases(storedPurchase("p-1", "ALM-25-0001"))
	suite.purchaseRepo.On("UpdatePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil)

	advance := dec("50")
	updated, err := suite.service.UpdatePurchase(ctx, "p-1", dto.UpdatePurchaseRequest{Advance: &advance}, "user-2")
	suite.Require().NoError(err)
	suite.True(dec("50").Equal(updated.Balance), updated.Balance.String())
	suite.Equal("user-2", updated.LastUpdatedBy)

	// Overpayment is kept as a negative balance.
	advance = dec("120.50")
	updated, err = suite.service.UpdatePurchase(ctx, "p-1", dto.UpdatePurchaseRequest{Advance: &advance}, "user-2")
	suite.Require().NoError(err)
	suite.True(dec("-20.50").Equal(updated.Balance), updated.Balance.String())

	cached, err := suite.service.GetPurchaseByID(ctx, "p-1")
	suite.Require().NoError(err)
	suite.True(dec("-20.50").Equal(cached.Balance))
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_ClearsInvoice() {
	ctx := context.Background()
	invoiced := storedPurchase("p-1", "ALM-25-0001")
	invoiceCode := "F001-123"
	invoiceDate := date(2025, 5, 31)
	invoiced.InvoiceCode, invoiced.InvoiceDate = &invoiceCode, &invoiceDate
	suite.seedPurchases(invoiced)
	suite.purchaseRepo.On("UpdatePurchase", ctx, mock.Anything).Return(nil).Twice()

	notes := "sin cambios de factura"
	kept, err := suite.service.UpdatePurchase(ctx, "p-1", dto.UpdatePurchaseRequest{Notes: &notes}, "user-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(kept.InvoiceDate)
	suite.Equal(invoiceDate, *kept.InvoiceDate)

	empty := ""
	cleared, err := suite.service.UpdatePurchase(ctx, "p-1", dto.UpdatePurchaseRequest{InvoiceCode: &empty, InvoiceDate: &dto.Date{}}, "user-1")
	suite.Require().NoError(err)
	suite.Nil(cleared.InvoiceCode)
	suite.Nil(cleared.InvoiceDate)
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_StatusOnlyKeepsBalance() {
	ctx := context.Background()
	suite.seedPurchases(storedPurchase("p-1", "ALM-25-0001"))
	suite.purchaseRepo.On("UpdatePurchase", ctx, mock.Anything).Return(nil).Once()

	status := domain.StatusPaid
	updated, err := suite.service.UpdatePurchase(ctx, "p-1", dto.UpdatePurchaseRequest{ServiceStatus: &status}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.ServiceStatus)
	suite.True(dec("70").Equal(updated.Balance))
}

func (suite *PurchaseServiceTestSuite) TestAssignThenUnassignTransport() {
	ctx := context.Background()
	suite.seedPurchases(storedPurchase("p-1", "ALM-25-0001"))
	suite.purchaseRepo.On("UpdatePurchase", ctx, mock.Anything).Return(nil).Twice()

	start := dto.NewDate(date(2025, 6, 2))
	end := dto.NewDate(date(2025, 6, 4))
	assigned, err := suite.service.AssignTransport(ctx, "p-1", dto.AssignTransportRequest{CarrierID: "c-1", StartDate: &start, EndDate: &end}, "user-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(assigned.CarrierID)
	suite.Equal("c-1", *assigned.CarrierID)
	suite.Equal(date(2025, 6, 2), *assigned.TransportStartDate)

	cleared, err := suite.service.UnassignTransport(ctx, "p-1", "user-1")
	suite.Require().NoError(err)
	suite.Nil(cleared.CarrierID)
	suite.Nil(cleared.TransportStartDate)
	suite.Nil(cleared.TransportEndDate)
	suite.purchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestAssignTransport_Rejections() {
	ctx := context.Background()
	suite.seedPurchases(storedPurchase("p-1", "ALM-25-0001"))

	start := dto.NewDate(date(2025, 6, 4))
	end := dto.NewDate(date(2025, 6, 2))
	_, err := suite.service.AssignTransport(ctx, "p-1", dto.AssignTransportRequest{CarrierID: "c-1", StartDate: &start, EndDate: &end}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AssignTransport(ctx, "p-1", dto.AssignTransportRequest{CarrierID: "c-404", StartDate: &end, EndDate: &start}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AssignTransport(ctx, "p-404", dto.AssignTransportRequest{CarrierID: "c-1", StartDate: &end, EndDate: &start}, "user-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.AssignTransport(ctx, "p-1", dto.AssignTransportRequest{CarrierID: "c-1", StartDate: &dto.Date{}, EndDate: &end}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.purchaseRepo.AssertNotCalled(suite.T(), "UpdatePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_ThenGetIsNotFound() {
	ctx := context.Background()
	suite.seedPurchases(storedPurchase("p-1", "ALM-25-0001"))
	suite.purchaseRepo.On("DeletePurchase", ctx, "p-1").Return(nil).Once()

	_, err := suite.service.GetPurchaseByID(ctx, "p-1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.DeletePurchase(ctx, "p-1", "user-1"))

	_, err = suite.service.GetPurchaseByID(ctx, "p-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_Filters() {
	carrierID := "c-1"
	p1 := storedPurchase("p-1", "ALM-25-0001")
	p2 := storedPurchase("p-2", "ALM-25-0002")
	p2.SupplierID = "s-2"
	p2.RawMaterial = "Trigo"
	p2.PurchaseDate = date(2025, 4, 10)
	p2.ServiceStatus = domain.StatusPaid
	p3 := storedPurchase("p-3", "ALM-25-0003")
	p3.CarrierID = &carrierID
	suite.seedPurchases(p1, p2, p3)
	ctx := context.Background()

	tests := []struct {
		name   string
		params dto.ListPurchasesParams
		want   []string
	}{
		{name: "all sorted by code desc", params: dto.ListPurchasesParams{}, want: []string{"ALM-25-0003", "ALM-25-0002", "ALM-25-0001"}},
		{name: "supplier name without accent", params: dto.ListPurchasesParams{Search: "agricola"}, want: []string{"ALM-25-0003", "ALM-25-0001"}},
		{name: "carrier name", params: dto.ListPurchasesParams{Search: "lima"}, want: []string{"ALM-25-0003"}},
		{name: "supplier tax id", params: dto.ListPurchasesParams{Search: "20222"}, want: []string{"ALM-25-0002"}},
		{name: "raw material", params: dto.ListPurchasesParams{RawMaterial: "MAIZ"}, want: []string{"ALM-25-0003", "ALM-25-0001"}},
		{name: "status", params: dto.ListPurchasesParams{ServiceStatus: string(domain.StatusPaid)}, want: []string{"ALM-25-0002"}},
		{name: "date range inclusive", params: dto.ListPurchasesParams{From: "2025-04-01", To: "2025-04-10"}, want: []string{"ALM-25-0002"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			res, err := suite.service.ListPurchases(ctx, tt.params)
			suite.Require().NoError(err)
			codes := make([]string, len(res.Items))
			for i, item := range res.Items {
				codes[i] = item.Code
			}
			suite.Equal(tt.want, codes)
		})
	}

	res, err := suite.service.ListPurchases(ctx, dto.ListPurchasesParams{Search: "lima"})
	suite.Require().NoError(err)
	suite.Equal("Agrícola Norte", res.Items[0].SupplierName)
	suite.Equal("Transportes Lima", res.Items[0].CarrierName)
	suite.Equal("S/. ", res.Items[0].BalanceDisplay[:4])
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_LongerCodesAreNewer() {
	suite.seedPurchases(
		storedPurchase("p-1", "ALM-25-9999"),
		storedPurchase("p-2", "ALM-25-10000"),
		storedPurchase("p-3", "ALM-25-0500"),
	)

	res, err := suite.service.ListPurchases(context.Background(), dto.ListPurchasesParams{})
	suite.Require().NoError(err)
	codes := make([]string, len(res.Items))
	for i, item := range res.Items {
		codes[i] = item.Code
	}
	suite.Equal([]string{"ALM-25-10000", "ALM-25-9999", "ALM-25-0500"}, codes)
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_InvalidStatus() {
	_, err := suite.service.ListPurchases(context.Background(), dto.ListPurchasesParams{ServiceStatus: "archivado"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
