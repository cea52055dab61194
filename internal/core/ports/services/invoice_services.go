package services

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its ID.
	GetInvoiceByID(ctx context.Context, tenantID, invoiceID string, requestingUserID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices in a tenant.
	ListInvoices(ctx context.Context, tenantID string, requestingUserID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice raises a new invoice against a customer.
	CreateInvoice(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// UpdateInvoice updates reference fields of an invoice. Rejected once any
	// receipt money has settled against the invoice.
	UpdateInvoice(ctx context.Context, tenantID, invoiceID string, req dto.UpdateInvoiceRequest, requestingUserID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice. Rejected once any receipt money has
	// settled against the invoice.
	DeleteInvoice(ctx context.Context, tenantID, invoiceID string, requestingUserID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
