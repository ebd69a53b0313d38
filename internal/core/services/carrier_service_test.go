package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/almacen_erp_lite/internal/apperrors"
	"github.com/SscSPs/almacen_erp_lite/internal/core/domain"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/core/services"
	"github.com/SscSPs/almacen_erp_lite/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CarrierServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCarrierRepository
	service  portssvc.CarrierSvcFacade
}

func (suite *CarrierServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCarrierRepository)
	suite.service = services.NewCarrierService(suite.mockRepo)
}

func validCarrierRequest() dto.CreateCarrierRequest {
	cci := "00219300123456789012"
	return dto.CreateCarrierRequest{
		Name:          "Transportes Sur",
		TaxID:         "20555555555",
		AccountType:   domain.AccountTypeSavings,
		AccountNumber: "193-12345678-0-12",
		InterbankCode: &cci,
	}
}

func (suite *CarrierServiceTestSuite) TestCreateCarrier_Success() {
	ctx := context.Background()
	suite.mockRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{}, nil).Once()
	suite.mockRepo.On("FindCarrierByTaxID", ctx, "20555555555").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCarrier", ctx, mock.AnythingOfType("domain.Carrier")).Return(nil).Once()

	created, err := suite.service.CreateCarrier(ctx, validCarrierRequest(), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AccountTypeSavings, created.AccountType)
	suite.Require().NotNil(created.InterbankCode)
	suite.Equal(1, suite.service.CarrierCacheStatus().Count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CarrierServiceTestSuite) TestCreateCarrier_RejectsBadBankDetails() {
	short := "123"
	tests := []struct {
		name   string
		modify func(*dto.CreateCarrierRequest)
	}{
		{name: "unknown account type", modify: func(r *dto.CreateCarrierRequest) { r.AccountType = "Plazo" }},
		{name: "short interbank code", modify: func(r *dto.CreateCarrierRequest) { r.InterbankCode = &short }},
		{name: "missing account number", modify: func(r *dto.CreateCarrierRequest) { r.AccountNumber = " " }},
		{name: "bad tax id", modify: func(r *dto.CreateCarrierRequest) { r.TaxID = "2055" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validCarrierRequest()
			tt.modify(&req)
			_, err := suite.service.CreateCarrier(context.Background(), req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCarrier", mock.Anything, mock.Anything)
}

func (suite *CarrierServiceTestSuite) TestCreateCarrier_DuplicateTaxID() {
	ctx := context.Background()
	suite.mockRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{}, nil).Once()
	suite.mockRepo.On("FindCarrierByTaxID", ctx, "20555555555").
		Return(&domain.Carrier{CarrierID: "c-9", TaxID: "20555555555"}, nil).Once()

	_, err := suite.service.CreateCarrier(ctx, validCarrierRequest(), "user-1")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CarrierServiceTestSuite) TestUpdateCarrier_ClearsInterbankCode() {
	ctx := context.Background()
	cci := "00219300123456789012"
	suite.mockRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{{
		CarrierID: "c-1", Name: "Sur", TaxID: "20555555555",
		AccountType: domain.AccountTypeChecking, AccountNumber: "1", InterbankCode: &cci,
	}}, nil)
	suite.mockRepo.On("UpdateCarrier", ctx, mock.AnythingOfType("domain.Carrier")).Return(nil).Once()

	empty := ""
	updated, err := suite.service.UpdateCarrier(ctx, "c-1", dto.UpdateCarrierRequest{InterbankCode: &empty}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(updated.InterbankCode)
}

func (suite *CarrierServiceTestSuite) TestListCarriers_SearchByTaxID() {
	suite.mockRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{
		{CarrierID: "c-1", Name: "Sur", TaxID: "20555555555"},
		{CarrierID: "c-2", Name: "Norte", TaxID: "20666666666"},
	}, nil)

	res, err := suite.service.ListCarriers(context.Background(), dto.ListCarriersParams{Search: "20666"})

	suite.Require().NoError(err)
	suite.Require().Len(res.Items, 1)
	suite.Equal("c-2", res.Items[0].CarrierID)
	suite.Equal(10, res.PerPage)
}

func (suite *CarrierServiceTestSuite) TestGetCarrierByID_NotFound() {
	suite.mockRepo.On("ListCarriers", mock.Anything).Return([]domain.Carrier{}, nil).Once()

	_, err := suite.service.GetCarrierByID(context.Background(), "c-404")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCarrierService(t *testing.T) {
	suite.Run(t, new(CarrierServiceTestSuite))
}
