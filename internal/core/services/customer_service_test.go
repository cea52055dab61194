package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/core/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.CustomerSvcFacade
	tenantID         string
	userID           string
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, suite.mockAuthorizer)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Acme Traders",
		Category:    domain.CategoryAlpha,
		CreditLimit: decimal.NewFromInt(50000),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.NotEmpty(customer.CustomerID)
	suite.True(customer.IsActive)
	suite.Equal(domain.CategoryAlpha, customer.Category)
	suite.Equal(suite.userID, customer.CreatedBy)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:     "Acme Traders",
		Category: domain.CustomerCategory("PLATINUM"),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateCustomer(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_NegativeCreditLimit() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:        "Acme Traders",
		Category:    domain.CategoryBeta,
		CreditLimit: decimal.NewFromInt(-1),
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()

	_, err := suite.service.CreateCustomer(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_Idempotent() {
	ctx := context.Background()
	inactive := &domain.Customer{
		CustomerID: uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Gone Fishing Ltd",
		Category:   domain.CategoryDelta,
		IsActive:   false,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, inactive.CustomerID).Return(inactive, nil).Once()

	err := suite.service.DeactivateCustomer(ctx, suite.tenantID, inactive.CustomerID, suite.userID)

	suite.Require().NoError(err)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID:  uuid.NewString(),
		TenantID:    suite.tenantID,
		Name:        "Acme Traders",
		Category:    domain.CategoryAlpha,
		CreditLimit: decimal.NewFromInt(1000),
		IsActive:    true,
	}
	newName := "Acme Traders Pvt Ltd"
	req := dto.UpdateCustomerRequest{Name: &newName}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, existing.CustomerID).Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == newName && c.Category == domain.CategoryAlpha
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, suite.tenantID, existing.CustomerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.CreditLimit.Equal(decimal.NewFromInt(1000)), "untouched fields survive")
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
