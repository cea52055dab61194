package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/core/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FollowUpServiceTestSuite struct {
	suite.Suite
	mockFollowUpRepo *MockFollowUpRepository
	mockCustomerRepo *MockCustomerRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.FollowUpSvcFacade
	tenantID         string
	userID           string
	customer         domain.Customer
}

func (suite *FollowUpServiceTestSuite) SetupTest() {
	suite.mockFollowUpRepo = new(MockFollowUpRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewFollowUpService(suite.mockFollowUpRepo, suite.mockCustomerRepo, suite.mockAuthorizer)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.customer = domain.Customer{
		CustomerID: uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Acme Traders",
		Category:   domain.CategoryAlpha,
		IsActive:   true,
	}
}

func (suite *FollowUpServiceTestSuite) pendingFollowUp() *domain.FollowUp {
	return &domain.FollowUp{
		FollowUpID:  uuid.NewString(),
		TenantID:    suite.tenantID,
		CustomerID:  suite.customer.CustomerID,
		ScheduledAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Priority:    domain.PriorityHigh,
		Status:      domain.FollowUpPending,
	}
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp_Success() {
	ctx := context.Background()
	req := dto.CreateFollowUpRequest{
		CustomerID:  suite.customer.CustomerID,
		ScheduledAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Note:        "chase INV-001",
		Priority:    "HIGH",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockFollowUpRepo.On("SaveFollowUp", ctx, mock.AnythingOfType("domain.FollowUp")).Return(nil).Once()

	followUp, err := suite.service.CreateFollowUp(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(followUp)
	suite.Equal(domain.FollowUpPending, followUp.Status)
	suite.Equal(domain.PriorityHigh, followUp.Priority)
	suite.Nil(followUp.CompletedAt)
}

func (suite *FollowUpServiceTestSuite) TestCompleteFollowUp_SetsCompletedAt() {
	ctx := context.Background()
	pending := suite.pendingFollowUp()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockFollowUpRepo.On("FindFollowUpByID", ctx, suite.tenantID, pending.FollowUpID).Return(pending, nil).Once()
	suite.mockFollowUpRepo.On("UpdateFollowUp", ctx, mock.MatchedBy(func(f domain.FollowUp) bool {
		return f.Status == domain.FollowUpCompleted && f.CompletedAt != nil
	})).Return(nil).Once()

	completed, err := suite.service.CompleteFollowUp(ctx, suite.tenantID, pending.FollowUpID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.FollowUpCompleted, completed.Status)
	suite.Require().NotNil(completed.CompletedAt)
	suite.mockFollowUpRepo.AssertExpectations(suite.T())
}

func (suite *FollowUpServiceTestSuite) TestCompleteFollowUp_AlreadyCompleted() {
	ctx := context.Background()
	done := suite.pendingFollowUp()
	now := time.Now()
	done.Status = domain.FollowUpCompleted
	done.CompletedAt = &now

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockFollowUpRepo.On("FindFollowUpByID", ctx, suite.tenantID, done.FollowUpID).Return(done, nil).Once()

	_, err := suite.service.CompleteFollowUp(ctx, suite.tenantID, done.FollowUpID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockFollowUpRepo.AssertNotCalled(suite.T(), "UpdateFollowUp", mock.Anything, mock.Anything)
}

func (suite *FollowUpServiceTestSuite) TestDeleteFollowUp_CompletedRejected() {
	ctx := context.Background()
	done := suite.pendingFollowUp()
	now := time.Now()
	done.Status = domain.FollowUpCompleted
	done.CompletedAt = &now

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockFollowUpRepo.On("FindFollowUpByID", ctx, suite.tenantID, done.FollowUpID).Return(done, nil).Once()

	err := suite.service.DeleteFollowUp(ctx, suite.tenantID, done.FollowUpID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockFollowUpRepo.AssertNotCalled(suite.T(), "DeleteFollowUp", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FollowUpServiceTestSuite) TestCreateFollowUp_UnknownCustomer() {
	ctx := context.Background()
	req := dto.CreateFollowUpRequest{
		CustomerID:  uuid.NewString(),
		ScheduledAt: time.Now(),
		Priority:    "LOW",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, req.CustomerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateFollowUp(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestFollowUpService(t *testing.T) {
	suite.Run(t, new(FollowUpServiceTestSuite))
}
