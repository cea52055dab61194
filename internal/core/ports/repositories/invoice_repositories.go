package repositories

import (
	"context"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its ID within a tenant.
	FindInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices for a tenant using
	// token-based pagination, optionally filtered by customer.
	// It returns the invoices, a token for the next page, and an error.
	ListInvoices(ctx context.Context, tenantID string, customerID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// FindInvoicesByCustomer retrieves every invoice of a customer dated on or before asOf,
	// ordered by (invoice_date, created_at) ascending.
	FindInvoicesByCustomer(ctx context.Context, tenantID, customerID string, asOf time.Time) ([]domain.Invoice, error)

	// FindInvoicesByTenant retrieves every invoice of a tenant dated on or before asOf.
	FindInvoicesByTenant(ctx context.Context, tenantID string, asOf time.Time) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an existing invoice's details.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, tenantID, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
