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
	"github.com/recovhq/recov_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "collector1", Password: "s3cret-pass", Name: "Collector One"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "collector1" &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "collector1",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "collector1").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "collector1", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "collector1",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "collector1").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "collector1", "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized, "unknown users and bad passwords are indistinguishable")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyUserRejected() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "oauth@example.com",
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "oauth@example.com").Return(stored, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "oauth@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Username:       "oauth@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: "google-sub-123",
	}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub-123").Return(existing, nil).Once()

	user, err := suite.service.GetOrCreateOAuthUser(ctx, domain.ProviderGoogle, "google-sub-123", "oauth@example.com", "OAuth User")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateOAuthUser_FirstSignIn() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderUserID == "google-sub-456" && u.Username == "new@example.com"
	})).Return(nil).Once()

	user, err := suite.service.GetOrCreateOAuthUser(ctx, domain.ProviderGoogle, "google-sub-456", "new@example.com", "New User")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
