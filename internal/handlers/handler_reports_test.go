package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/handlers"
	"github.com/recovhq/recov_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DebtorsService ---
type MockDebtorsService struct {
	mock.Mock
}

func (m *MockDebtorsService) DebtorsReport(ctx context.Context, tenantID string, asOf time.Time, requestingUserID string) (*domain.DebtorsReport, error) {
	args := m.Called(ctx, tenantID, asOf, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtorsReport), args.Error(1)
}

var _ portssvc.DebtorsSvcFacade = (*MockDebtorsService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CustomerLedger(ctx context.Context, tenantID, customerID string, fromDate, toDate *time.Time, requestingUserID string) (*domain.LedgerStatement, error) {
	args := m.Called(ctx, tenantID, customerID, fromDate, toDate, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerStatement), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ScorecardService ---
type MockScorecardService struct {
	mock.Mock
}

func (m *MockScorecardService) CustomerScorecard(ctx context.Context, tenantID, customerID string, asOf time.Time, requestingUserID string) (*domain.Scorecard, error) {
	args := m.Called(ctx, tenantID, customerID, asOf, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scorecard), args.Error(1)
}

var _ portssvc.ScorecardSvcFacade = (*MockScorecardService)(nil)

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockDebtorsService   *MockDebtorsService
	mockLedgerService    *MockLedgerService
	mockScorecardService *MockScorecardService
	jwtSecret            string
	tenantID             string
	userID               string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReportHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "recov-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDebtorsService = new(MockDebtorsService)
	suite.mockLedgerService = new(MockLedgerService)
	suite.mockScorecardService = new(MockScorecardService)

	tenant := suite.router.Group("/api/v1/tenants/:tenant_id")
	handlers.RegisterReportRoutes(tenant, suite.mockDebtorsService, suite.mockLedgerService, suite.mockScorecardService)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// doRequest performs an authenticated GET against the test router.
func (suite *ReportHandlerTestSuite) doRequest(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportHandlerTestSuite) TestGetDebtorsReport_Success() {
	asOf := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.DebtorsReport{
		TenantID: suite.tenantID,
		AsOf:     asOf,
		Groups: []domain.DebtorCategoryGroup{
			{Category: domain.CategoryAlpha, Debtors: []domain.DebtorSummary{}, TotalBalance: decimal.Zero},
			{Category: domain.CategoryBeta, Debtors: []domain.DebtorSummary{}, TotalBalance: decimal.Zero},
			{Category: domain.CategoryGamma, Debtors: []domain.DebtorSummary{}, TotalBalance: decimal.Zero},
			{Category: domain.CategoryDelta, Debtors: []domain.DebtorSummary{}, TotalBalance: decimal.Zero},
		},
		TotalInvoiced: decimal.NewFromInt(1000),
		TotalReceived: decimal.NewFromInt(400),
		TotalBalance:  decimal.NewFromInt(600),
	}

	suite.mockDebtorsService.On("DebtorsReport",
		mock.AnythingOfType("*context.valueCtx"),
		suite.tenantID,
		asOf,
		suite.userID,
	).Return(report, nil).Once()

	url := fmt.Sprintf("/api/v1/tenants/%s/reports/debtors?asOf=2024-03-31", suite.tenantID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DebtorsReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-03-31", body.AsOf)
	suite.Len(body.Groups, 4, "all four category groups are always present")
	suite.True(decimal.NewFromInt(600).Equal(body.Summary.TotalBalance))

	suite.mockDebtorsService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetDebtorsReport_InvalidAsOf() {
	url := fmt.Sprintf("/api/v1/tenants/%s/reports/debtors?asOf=31-03-2024", suite.tenantID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDebtorsService.AssertNotCalled(suite.T(), "DebtorsReport")
}

func (suite *ReportHandlerTestSuite) TestGetCustomerLedger_ParsesDateRange() {
	customerID := uuid.NewString()
	fromDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	statement := &domain.LedgerStatement{
		CustomerID:     customerID,
		CustomerName:   "Acme Traders",
		FromDate:       &fromDate,
		ToDate:         &toDate,
		OpeningBalance: decimal.Zero,
		Entries:        []domain.LedgerEntry{},
		TotalDebits:    decimal.NewFromInt(500),
		TotalCredits:   decimal.NewFromInt(200),
		ClosingBalance: decimal.NewFromInt(300),
		ClosingSide:    domain.SideDr,
	}

	suite.mockLedgerService.On("CustomerLedger",
		mock.AnythingOfType("*context.valueCtx"),
		suite.tenantID,
		customerID,
		&fromDate,
		&toDate,
		suite.userID,
	).Return(statement, nil).Once()

	url := fmt.Sprintf("/api/v1/tenants/%s/customers/%s/ledger?fromDate=2024-01-01&toDate=2024-03-31", suite.tenantID, customerID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.LedgerStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(customerID, body.CustomerID)
	suite.Equal("Dr", body.ClosingSide)
	suite.True(decimal.NewFromInt(300).Equal(body.ClosingBalance))

	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetCustomerLedger_RangeReversed() {
	customerID := uuid.NewString()
	url := fmt.Sprintf("/api/v1/tenants/%s/customers/%s/ledger?fromDate=2024-03-31&toDate=2024-01-01", suite.tenantID, customerID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CustomerLedger")
}

func (suite *ReportHandlerTestSuite) TestGetCustomerScorecard_NotFound() {
	customerID := uuid.NewString()

	suite.mockScorecardService.On("CustomerScorecard",
		mock.AnythingOfType("*context.valueCtx"),
		suite.tenantID,
		customerID,
		mock.AnythingOfType("time.Time"),
		suite.userID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/tenants/%s/customers/%s/scorecard", suite.tenantID, customerID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockScorecardService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetCustomerScorecard_ForbiddenForNonMembers() {
	customerID := uuid.NewString()

	suite.mockScorecardService.On("CustomerScorecard",
		mock.AnythingOfType("*context.valueCtx"),
		suite.tenantID,
		customerID,
		mock.AnythingOfType("time.Time"),
		suite.userID,
	).Return(nil, apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/tenants/%s/customers/%s/scorecard", suite.tenantID, customerID)
	w := suite.doRequest(url)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ReportHandlerTestSuite) TestReports_RequireAuthentication() {
	url := fmt.Sprintf("/api/v1/tenants/%s/reports/debtors", suite.tenantID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDebtorsService.AssertNotCalled(suite.T(), "DebtorsReport")
}

func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
