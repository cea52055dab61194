package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/recovhq/recov_backend/internal/utils/receivables"
)

// farFuture covers every recorded document regardless of its date.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// InvoiceService handles business logic related to invoices.
type InvoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(ir portsrepo.InvoiceRepositoryFacade, rr portsrepo.ReceiptRepositoryFacade, cr portsrepo.CustomerRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.InvoiceSvcFacade {
	return &InvoiceService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		invoiceRepo:  ir,
		receiptRepo:  rr,
		customerRepo: cr,
	}
}

// Ensure InvoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// parseCalendarDate parses a YYYY-MM-DD string into a UTC time.
func parseCalendarDate(value, field string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperrors.ErrValidation, field)
	}
	return t, nil
}

// CreateInvoice raises a new invoice against a customer. Requires MEMBER role.
func (s *InvoiceService) CreateInvoice(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	if err := requirePositiveAmount(req.Amount, "invoice"); err != nil {
		return nil, err
	}

	invoiceDate, err := parseCalendarDate(req.InvoiceDate, "invoiceDate")
	if err != nil {
		return nil, err
	}
	dueDate, err := parseCalendarDate(req.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}
	if dueDate.Before(invoiceDate) {
		return nil, fmt.Errorf("%w: dueDate cannot precede invoiceDate", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: customer %s is deactivated", apperrors.ErrValidation, req.CustomerID)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		TenantID:      tenantID,
		CustomerID:    customer.CustomerID,
		CustomerName:  customer.Name,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice in repository", slog.String("tenant_id", tenantID), slog.String("invoice_number", req.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created successfully", slog.String("invoice_id", invoice.InvoiceID), slog.String("tenant_id", tenantID))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice. Requires READONLY role.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, tenantID, invoiceID string, requestingUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves a paginated list of invoices. Requires READONLY role.
func (s *InvoiceService) ListInvoices(ctx context.Context, tenantID string, requestingUserID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, tenantID, params.CustomerID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("tenant_id", tenantID))
		return nil, err
	}

	resp := dto.ToListInvoicesResponse(invoices, nextToken)
	return &resp, nil
}

// hasSettledMoney reports whether any receipt money has settled against the invoice.
func (s *InvoiceService) hasSettledMoney(ctx context.Context, invoice *domain.Invoice) (bool, error) {
	invoices, err := s.invoiceRepo.FindInvoicesByCustomer(ctx, invoice.TenantID, invoice.CustomerID, farFuture)
	if err != nil {
		return false, err
	}
	receipts, err := s.receiptRepo.FindReceiptsByCustomer(ctx, invoice.TenantID, invoice.CustomerID, farFuture)
	if err != nil {
		return false, err
	}
	return receivables.HasSettledMoney(invoice.InvoiceID, invoices, receipts), nil
}

// UpdateInvoice updates the reference fields of an invoice. Requires MEMBER
// role. Rejected once any receipt money has settled against the invoice.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, tenantID, invoiceID string, req dto.UpdateInvoiceRequest, requestingUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	settled, err := s.hasSettledMoney(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if settled {
		return nil, apperrors.NewConflictError("invoice has settled receipts and can no longer be modified")
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.InvoiceDate != nil {
		invoiceDate, parseErr := parseCalendarDate(*req.InvoiceDate, "invoiceDate")
		if parseErr != nil {
			return nil, parseErr
		}
		invoice.InvoiceDate = invoiceDate
	}
	if req.DueDate != nil {
		dueDate, parseErr := parseCalendarDate(*req.DueDate, "dueDate")
		if parseErr != nil {
			return nil, parseErr
		}
		invoice.DueDate = dueDate
	}
	if invoice.DueDate.Before(invoice.InvoiceDate) {
		return nil, fmt.Errorf("%w: dueDate cannot precede invoiceDate", apperrors.ErrValidation)
	}

	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = requestingUserID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice in repository", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice removes an invoice. Requires MEMBER role. Rejected once any
// receipt money has settled against the invoice.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, tenantID, invoiceID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}

	settled, err := s.hasSettledMoney(ctx, invoice)
	if err != nil {
		return err
	}
	if settled {
		return apperrors.NewConflictError("invoice has settled receipts and can no longer be deleted")
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, tenantID, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID), slog.String("tenant_id", tenantID))
	return nil
}
