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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ScorecardServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockReceiptRepo  *MockReceiptRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.ScorecardSvcFacade
	tenantID         string
	userID           string
	customer         domain.Customer
	asOf             time.Time
}

func (suite *ScorecardServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewScorecardService(suite.mockCustomerRepo, suite.mockInvoiceRepo, suite.mockReceiptRepo, suite.mockAuthorizer)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.customer = domain.Customer{
		CustomerID: uuid.NewString(),
		TenantID:   suite.tenantID,
		Name:       "Acme Traders",
		Category:   domain.CategoryAlpha,
		IsActive:   true,
	}
	suite.asOf = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *ScorecardServiceTestSuite) newInvoice(amount int64, invoiceDate, dueDate time.Time) domain.Invoice {
	return domain.Invoice{
		InvoiceID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		CustomerID:   suite.customer.CustomerID,
		CustomerName: suite.customer.Name,
		Amount:       decimal.NewFromInt(amount),
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		AuditFields:  domain.AuditFields{CreatedAt: invoiceDate},
	}
}

func (suite *ScorecardServiceTestSuite) newReceipt(amount int64, date time.Time) domain.Receipt {
	return domain.Receipt{
		ReceiptID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		CustomerID:   suite.customer.CustomerID,
		CustomerName: suite.customer.Name,
		VoucherType:  domain.VoucherReceipt,
		Amount:       decimal.NewFromInt(amount),
		ReceiptDate:  date,
		AuditFields:  domain.AuditFields{CreatedAt: date},
	}
}

func (suite *ScorecardServiceTestSuite) expectLoads(invoices []domain.Invoice, receipts []domain.Receipt) {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoicesByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, suite.asOf).Return(invoices, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, suite.asOf).Return(receipts, nil).Once()
}

func (suite *ScorecardServiceTestSuite) score(invoices []domain.Invoice, receipts []domain.Receipt) *domain.Scorecard {
	suite.expectLoads(invoices, receipts)
	scorecard, err := suite.service.CustomerScorecard(context.Background(), suite.tenantID, suite.customer.CustomerID, suite.asOf, suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(scorecard)
	return scorecard
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_AllOnTime() {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	invoices := []domain.Invoice{
		suite.newInvoice(1000, jan1, jan1.AddDate(0, 0, 30)),
		suite.newInvoice(2000, jan1.AddDate(0, 1, 0), jan1.AddDate(0, 1, 30)),
	}
	receipts := []domain.Receipt{
		suite.newReceipt(1000, jan1.AddDate(0, 0, 10)),
		suite.newReceipt(2000, jan1.AddDate(0, 1, 10)),
	}

	scorecard := suite.score(invoices, receipts)

	suite.Equal(2, scorecard.InvoiceCount)
	suite.Equal(2, scorecard.OnTimeCount)
	suite.Equal(0, scorecard.LateCount)
	suite.Equal(0, scorecard.PendingCount)
	suite.InDelta(1.0, scorecard.OnTimeRate, 1e-9)
	suite.Equal(100, scorecard.PaymentScore)
	suite.Equal(domain.ClassStar, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_SettledLateInvoice() {
	// Due 2024-01-31, completing receipt lands 2024-02-10: 10 days late.
	inv := suite.newInvoice(1000, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	onTimeInv := suite.newInvoice(500, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	receipts := []domain.Receipt{
		suite.newReceipt(1000, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		suite.newReceipt(500, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	}

	scorecard := suite.score([]domain.Invoice{inv, onTimeInv}, receipts)

	suite.Equal(1, scorecard.OnTimeCount)
	suite.Equal(1, scorecard.LateCount)
	suite.InDelta(0.5, scorecard.OnTimeRate, 1e-9)
	suite.InDelta(10.0, scorecard.AvgDelayDays, 1e-9)
	// round(0.5*100) - min(round(10), 40) = 50 - 10 = 40
	suite.Equal(40, scorecard.PaymentScore)
	suite.Equal(domain.ClassRisky, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_PendingDoesNotAffectRate() {
	// Unsettled but due after asOf: pending.
	inv := suite.newInvoice(1000, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))

	scorecard := suite.score([]domain.Invoice{inv}, []domain.Receipt{})

	suite.Equal(1, scorecard.InvoiceCount)
	suite.Equal(1, scorecard.PendingCount)
	suite.Equal(0, scorecard.OnTimeCount)
	suite.Equal(0, scorecard.LateCount)
	suite.InDelta(1.0, scorecard.OnTimeRate, 1e-9, "nothing has come due yet")
	suite.Equal(100, scorecard.PaymentScore)
	suite.Equal(domain.ClassStar, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_UnsettledOverdueCountsLate() {
	// Due 2024-05-02, still unpaid at asOf 2024-06-01: 30 days late and counting.
	inv := suite.newInvoice(1000, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	scorecard := suite.score([]domain.Invoice{inv}, []domain.Receipt{})

	suite.Equal(1, scorecard.LateCount)
	suite.Equal(0, scorecard.PendingCount)
	suite.InDelta(0.0, scorecard.OnTimeRate, 1e-9)
	suite.InDelta(30.0, scorecard.AvgDelayDays, 1e-9)
	suite.Equal(0, scorecard.PaymentScore)
	suite.Equal(domain.ClassCritical, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_DelayPenaltyIsCapped() {
	// Nine invoices settled on time during 2023, then one invoice unpaid
	// since January: 100+ days overdue, but the penalty caps at 40.
	var invoices []domain.Invoice
	var receipts []domain.Receipt
	for i := 0; i < 9; i++ {
		d := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*7)
		invoices = append(invoices, suite.newInvoice(100, d, d.AddDate(0, 0, 30)))
		receipts = append(receipts, suite.newReceipt(100, d.AddDate(0, 0, 5)))
	}
	invoices = append(invoices, suite.newInvoice(1000, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))

	scorecard := suite.score(invoices, receipts)

	suite.Equal(10, scorecard.InvoiceCount)
	suite.Equal(9, scorecard.OnTimeCount)
	suite.Equal(1, scorecard.LateCount)
	// round(0.9*100) - 40 (capped) = 50
	suite.Equal(50, scorecard.PaymentScore)
	suite.Equal(domain.ClassRisky, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_NoInvoices() {
	scorecard := suite.score([]domain.Invoice{}, []domain.Receipt{})

	suite.Equal(0, scorecard.InvoiceCount)
	suite.InDelta(1.0, scorecard.OnTimeRate, 1e-9)
	suite.Equal(100, scorecard.PaymentScore)
	suite.Equal(domain.ClassStar, scorecard.Classification)
}

func (suite *ScorecardServiceTestSuite) TestCustomerScorecard_CustomerNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CustomerScorecard(ctx, suite.tenantID, unknownID, suite.asOf, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestScorecardService(t *testing.T) {
	suite.Run(t, new(ScorecardServiceTestSuite))
}
