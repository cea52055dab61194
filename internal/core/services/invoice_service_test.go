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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockReceiptRepo  *MockReceiptRepository
	mockCustomerRepo *MockCustomerRepository
	mockAuthorizer   *MockTenantAuthorizer
	service          portssvc.InvoiceSvcFacade
	tenantID         string
	userID           string
	customer         domain.Customer
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockAuthorizer = new(MockTenantAuthorizer)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockReceiptRepo, suite.mockCustomerRepo, suite.mockAuthorizer)

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

func (suite *InvoiceServiceTestSuite) expectMemberAuth() {
	suite.mockAuthorizer.On("AuthorizeUserAction", context.Background(), suite.userID, suite.tenantID, domain.RoleMember).Return(nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customer.CustomerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(10000),
		InvoiceDate:   "2024-01-05",
		DueDate:       "2024-02-04",
	}

	suite.expectMemberAuth()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, suite.customer.CustomerID).Return(&suite.customer, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(suite.customer.Name, invoice.CustomerName, "customer name is denormalized onto the invoice")
	suite.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), invoice.InvoiceDate)
	suite.Equal(suite.userID, invoice.CreatedBy)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customer.CustomerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.Zero,
		InvoiceDate:   "2024-01-05",
		DueDate:       "2024-02-04",
	}

	suite.expectMemberAuth()

	_, err := suite.service.CreateInvoice(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsDueDateBeforeInvoiceDate() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customer.CustomerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(100),
		InvoiceDate:   "2024-02-04",
		DueDate:       "2024-01-05",
	}

	suite.expectMemberAuth()

	_, err := suite.service.CreateInvoice(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsDeactivatedCustomer() {
	ctx := context.Background()
	inactive := suite.customer
	inactive.IsActive = false
	req := dto.CreateInvoiceRequest{
		CustomerID:    inactive.CustomerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(100),
		InvoiceDate:   "2024-01-05",
		DueDate:       "2024-02-04",
	}

	suite.expectMemberAuth()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, suite.tenantID, inactive.CustomerID).Return(&inactive, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) settledInvoiceFixture() (domain.Invoice, []domain.Invoice, []domain.Receipt) {
	invoiceDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		TenantID:      suite.tenantID,
		CustomerID:    suite.customer.CustomerID,
		CustomerName:  suite.customer.Name,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(1000),
		InvoiceDate:   invoiceDate,
		DueDate:       invoiceDate.AddDate(0, 0, 30),
		AuditFields:   domain.AuditFields{CreatedAt: invoiceDate},
	}
	receipt := domain.Receipt{
		ReceiptID:    uuid.NewString(),
		TenantID:     suite.tenantID,
		CustomerID:   suite.customer.CustomerID,
		VoucherType:  domain.VoucherReceipt,
		Amount:       decimal.NewFromInt(300),
		ReceiptDate:  invoiceDate.AddDate(0, 0, 10),
		AuditFields:  domain.AuditFields{CreatedAt: invoiceDate.AddDate(0, 0, 10)},
		CustomerName: suite.customer.Name,
	}
	return invoice, []domain.Invoice{invoice}, []domain.Receipt{receipt}
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_BlockedOnceSettled() {
	ctx := context.Background()
	invoice, invoices, receipts := suite.settledInvoiceFixture()
	newNumber := "INV-001-REV"
	req := dto.UpdateInvoiceRequest{InvoiceNumber: &newNumber}

	suite.expectMemberAuth()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.tenantID, invoice.InvoiceID).Return(&invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoicesByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return(invoices, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return(receipts, nil).Once()

	_, err := suite.service.UpdateInvoice(ctx, suite.tenantID, invoice.InvoiceID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_BlockedOnceSettled() {
	ctx := context.Background()
	invoice, invoices, receipts := suite.settledInvoiceFixture()

	suite.expectMemberAuth()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.tenantID, invoice.InvoiceID).Return(&invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoicesByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return(invoices, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return(receipts, nil).Once()

	err := suite.service.DeleteInvoice(ctx, suite.tenantID, invoice.InvoiceID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_AllowedWhileUnsettled() {
	ctx := context.Background()
	invoice, invoices, _ := suite.settledInvoiceFixture()

	suite.expectMemberAuth()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.tenantID, invoice.InvoiceID).Return(&invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoicesByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return(invoices, nil).Once()
	suite.mockReceiptRepo.On("FindReceiptsByCustomer", ctx, suite.tenantID, suite.customer.CustomerID, mock.AnythingOfType("time.Time")).Return([]domain.Receipt{}, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, suite.tenantID, invoice.InvoiceID).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, suite.tenantID, invoice.InvoiceID, suite.userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_AuthorizationFail() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:    suite.customer.CustomerID,
		InvoiceNumber: "INV-001",
		Amount:        decimal.NewFromInt(100),
		InvoiceDate:   "2024-01-05",
		DueDate:       "2024-02-04",
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, suite.userID, suite.tenantID, domain.RoleMember).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateInvoice(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
