package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.TenantSvcFacade
	tenantID       string
	userID         string
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockUserRepo)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TenantServiceTestSuite) membershipWithRole(role domain.UserTenantRole) *domain.UserTenant {
	return &domain.UserTenant{
		UserID:   suite.userID,
		TenantID: suite.tenantID,
		Role:     role,
	}
}

func (suite *TenantServiceTestSuite) TestCreateTenant_CreatorBecomesAdmin() {
	ctx := context.Background()

	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(nil).Once()
	suite.mockTenantRepo.On("AddUserToTenant", ctx, mock.MatchedBy(func(m domain.UserTenant) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, "North Region", "collections for the north", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(tenant)
	suite.NotEmpty(tenant.TenantID)
	suite.True(tenant.IsActive)
	suite.Equal(suite.userID, tenant.CreatedBy)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_AdminSatisfiesMember() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleAdmin), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleMember)

	suite.NoError(err)
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_ReadOnlyCannotWrite() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleReadOnly), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_ReadOnlyCanRead() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleReadOnly), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleReadOnly)

	suite.NoError(err)
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_RemovedIsDenied() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleRemoved), nil).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleReadOnly)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestAuthorizeUserAction_NonMemberIsForbidden() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeUserAction(ctx, suite.userID, suite.tenantID, domain.RoleReadOnly)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TenantServiceTestSuite) TestAddUserToTenant_RequiresAdmin() {
	ctx := context.Background()
	targetUserID := uuid.NewString()

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleMember), nil).Once()

	err := suite.service.AddUserToTenant(ctx, suite.userID, targetUserID, suite.tenantID, domain.RoleMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "AddUserToTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestAddUserToTenant_UnknownTargetUser() {
	ctx := context.Background()
	targetUserID := uuid.NewString()

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleAdmin), nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetUserID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddUserToTenant(ctx, suite.userID, targetUserID, suite.tenantID, domain.RoleMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TenantServiceTestSuite) TestRemoveUserFromTenant_SelfRemovalRejected() {
	ctx := context.Background()

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleAdmin), nil).Once()

	err := suite.service.RemoveUserFromTenant(ctx, suite.userID, suite.userID, suite.tenantID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TenantServiceTestSuite) TestRemoveUserFromTenant_MarksRemoved() {
	ctx := context.Background()
	targetUserID := uuid.NewString()

	suite.mockTenantRepo.On("FindUserTenantRole", ctx, suite.userID, suite.tenantID).Return(suite.membershipWithRole(domain.RoleAdmin), nil).Once()
	suite.mockTenantRepo.On("UpdateUserTenantRole", ctx, targetUserID, suite.tenantID, domain.RoleRemoved).Return(nil).Once()

	err := suite.service.RemoveUserFromTenant(ctx, suite.userID, targetUserID, suite.tenantID)

	suite.Require().NoError(err)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestListUserTenants_FiltersDisabled() {
	ctx := context.Background()
	tenants := []domain.Tenant{
		{TenantID: uuid.NewString(), Name: "Active", IsActive: true},
		{TenantID: uuid.NewString(), Name: "Disabled", IsActive: false},
	}

	suite.mockTenantRepo.On("ListTenantsByUserID", ctx, suite.userID).Return(tenants, nil).Twice()

	onlyActive, err := suite.service.ListUserTenants(ctx, suite.userID, false)
	suite.Require().NoError(err)
	suite.Len(onlyActive, 1)
	suite.Equal("Active", onlyActive[0].Name)

	all, err := suite.service.ListUserTenants(ctx, suite.userID, true)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
