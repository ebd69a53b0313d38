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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SupplierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSupplierRepository
	service  portssvc.SupplierSvcFacade
	now      time.Time
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSupplierRepository)
	suite.now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewSupplierService(suite.mockRepo, services.WithSupplierClock(fixedClock(suite.now)))
}

func (suite *SupplierServiceTestSuite) seed(suppliers ...domain.Supplier) {
	suite.mockRepo.On("ListSuppliers", mock.Anything).Return(suppliers, nil)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	suite.seed()
	suite.mockRepo.On("FindSupplierByTaxID", ctx, "20123456789").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(nil).Once()

	created, err := suite.service.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: " Acme SAC ", TaxID: "20123456789"}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(created.SupplierID)
	suite.Equal("Acme SAC", created.Name)
	suite.Equal("user-1", created.CreatedBy)
	suite.Equal(suite.now, created.CreatedAt)

	// The write is visible without another store read.
	got, err := suite.service.GetSupplierByID(ctx, created.SupplierID)
	suite.Require().NoError(err)
	suite.Equal(created.TaxID, got.TaxID)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListSuppliers", 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_DuplicateTaxID() {
	ctx := context.Background()
	existing := domain.Supplier{SupplierID: "s-1", Name: "Acme", TaxID: "20123456789"}
	suite.seed(existing)
	suite.mockRepo.On("FindSupplierByTaxID", ctx, "20123456789").Return(&existing, nil).Once()

	created, err := suite.service.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Otra", TaxID: "20123456789"}, "user-1")

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSupplier", mock.Anything, mock.Anything)

	all, err := suite.service.CachedSuppliers(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_InvalidTaxID() {
	for _, taxID := range []string{"123", "2012345678A", "201234567890"} {
		_, err := suite.service.CreateSupplier(context.Background(), dto.CreateSupplierRequest{Name: "Acme", TaxID: taxID}, "user-1")
		suite.ErrorIs(err, apperrors.ErrValidation, taxID)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSupplierByTaxID", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_CustomTaxIDLength() {
	ctx := context.Background()
	svc := services.NewSupplierService(suite.mockRepo, services.WithSupplierTaxIDLength(8))
	suite.seed()
	suite.mockRepo.On("FindSupplierByTaxID", ctx, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSupplier", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", TaxID: "12345678"}, "user-1")
	suite.NoError(err)
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_StoreError() {
	ctx := context.Background()
	suite.seed()
	suite.mockRepo.On("FindSupplierByTaxID", ctx, "20123456789").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSupplier", ctx, mock.Anything).Return(apperrors.ErrStoreUnavailable).Once()

	_, err := suite.service.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme", TaxID: "20123456789"}, "user-1")
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.Equal(0, suite.service.SupplierCacheStatus().Count)
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_FiltersAndPaginates() {
	suite.seed(
		domain.Supplier{SupplierID: "s-1", Name: "Molinos Perú", TaxID: "20100000001"},
		domain.Supplier{SupplierID: "s-2", Name: "Acme", TaxID: "20100000002"},
		domain.Supplier{SupplierID: "s-3", Name: "Molino Andino", TaxID: "20100000003"},
	)

	res, err := suite.service.ListSuppliers(context.Background(), dto.ListSuppliersParams{Search: "MOLINO", Page: 1, PerPage: 1})

	suite.Require().NoError(err)
	suite.Equal(2, res.Total)
	suite.Equal(2, res.TotalPages)
	suite.Require().Len(res.Items, 1)
	suite.Equal("Molino Andino", res.Items[0].Name)

	status := suite.service.SupplierCacheStatus()
	suite.True(status.Loaded)
	suite.Equal(3, status.Count)
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_RefreshErrorIsRecorded() {
	suite.mockRepo.On("ListSuppliers", mock.Anything).Return(nil, apperrors.ErrStoreUnavailable).Once()

	_, err := suite.service.ListSuppliers(context.Background(), dto.ListSuppliersParams{})

	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	status := suite.service.SupplierCacheStatus()
	suite.False(status.Loaded)
	suite.NotEmpty(status.LastError)
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_MergesFields() {
	ctx := context.Background()
	suite.seed(domain.Supplier{SupplierID: "s-1", Name: "Acme", TaxID: "20123456789"})
	suite.mockRepo.On("UpdateSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(nil).Once()

	name := "Acme Perú"
	updated, err := suite.service.UpdateSupplier(ctx, "s-1", dto.UpdateSupplierRequest{Name: &name}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Acme Perú", updated.Name)
	suite.Equal("20123456789", updated.TaxID)
	suite.Equal("user-2", updated.LastUpdatedBy)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindSupplierByTaxID", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_TaxIDTakenByAnother() {
	ctx := context.Background()
	other := domain.Supplier{SupplierID: "s-2", Name: "Beta", TaxID: "20999999999"}
	suite.seed(domain.Supplier{SupplierID: "s-1", Name: "Acme", TaxID: "20123456789"}, other)
	suite.mockRepo.On("FindSupplierByTaxID", ctx, "20999999999").Return(&other, nil).Once()

	taxID := "20999999999"
	_, err := suite.service.UpdateSupplier(ctx, "s-1", dto.UpdateSupplierRequest{TaxID: &taxID}, "user-1")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SupplierServiceTestSuite) TestDeleteSupplier_ThenGetIsNotFound() {
	ctx := context.Background()
	suite.seed(domain.Supplier{SupplierID: "s-1", Name: "Acme", TaxID: "20123456789"})
	suite.mockRepo.On("DeleteSupplier", ctx, "s-1").Return(nil).Once()

	_, err := suite.service.GetSupplierByID(ctx, "s-1")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteSupplier(ctx, "s-1", "user-1"))

	_, err = suite.service.GetSupplierByID(ctx, "s-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SupplierServiceTestSuite) TestDeleteSupplier_Missing() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteSupplier", ctx, "nope").Return(apperrors.ErrNotFound).Once()
	assert.ErrorIs(suite.T(), suite.service.DeleteSupplier(ctx, "nope", "user-1"), apperrors.ErrNotFound)
}

func TestSupplierService(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
