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
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, services.WithRegistrationMasterCode("ALM2025"))
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:       "Rosa Quispe",
		NationalID: "45678912",
		Email:      " Rosa@Almacen.pe ",
		Password:   "secreto1",
		MasterCode: "ALM2025",
	}
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "rosa@almacen.pe").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "rosa@almacen.pe" && u.PasswordHash != "secreto1" && u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, registerRequest())

	suite.Require().NoError(err)
	suite.True(utils.CheckPasswordHash("secreto1", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_Rejections() {
	tests := []struct {
		name    string
		modify  func(*dto.RegisterRequest)
		wantErr error
	}{
		{name: "wrong master code", modify: func(r *dto.RegisterRequest) { r.MasterCode = "X" }, wantErr: apperrors.ErrInvalidMasterCode},
		{name: "invalid email", modify: func(r *dto.RegisterRequest) { r.Email = "rosa-at-almacen" }, wantErr: apperrors.ErrInvalidEmail},
		{name: "weak password", modify: func(r *dto.RegisterRequest) { r.Password = "123" }, wantErr: apperrors.ErrWeakPassword},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := registerRequest()
			tt.modify(&req)
			_, err := suite.service.RegisterUser(context.Background(), req)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_EmailInUse() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "rosa@almacen.pe").Return(&domain.User{UserID: "u-1"}, nil).Once()

	_, err := suite.service.RegisterUser(ctx, registerRequest())
	suite.ErrorIs(err, apperrors.ErrEmailInUse)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DisabledWithoutMasterCode() {
	svc := services.NewUserService(suite.mockRepo)
	_, err := svc.RegisterUser(context.Background(), registerRequest())
	suite.ErrorIs(err, apperrors.ErrAuthMisconfigured)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secreto1")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u-1", Email: "rosa@almacen.pe", PasswordHash: hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "rosa@almacen.pe").Return(stored, nil)
	suite.mockRepo.On("FindUserByEmail", ctx, "nadie@almacen.pe").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(ctx, "ROSA@almacen.pe", "secreto1")
	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "rosa@almacen.pe", "otra")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = suite.service.AuthenticateUser(ctx, "nadie@almacen.pe", "secreto1")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateUserName", ctx, "u-1", "Rosa Q.", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, "u-1").Return(&domain.User{UserID: "u-1", Name: "Rosa Q."}, nil).Once()

	user, err := suite.service.UpdateProfile(ctx, "u-1", dto.UpdateProfileRequest{Name: " Rosa Q. "})

	suite.Require().NoError(err)
	suite.Equal("Rosa Q.", user.Name)

	_, err = suite.service.UpdateProfile(ctx, "u-1", dto.UpdateProfileRequest{Name: "  "})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestRefreshTokenStorage() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	suite.mockRepo.On("UpdateRefreshToken", ctx, "u-1", "hash", expiry).Return(nil).Once()
	suite.mockRepo.On("ClearRefreshToken", ctx, "u-1").Return(nil).Once()

	suite.NoError(suite.service.UpdateRefreshToken(ctx, "u-1", "hash", expiry))
	suite.NoError(suite.service.ClearRefreshToken(ctx, "u-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
