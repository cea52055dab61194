package repositories

import (
	"context"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a specific receipt by its ID within a tenant.
	FindReceiptByID(ctx context.Context, tenantID, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated list of receipts for a tenant using
	// token-based pagination, optionally filtered by customer.
	// It returns the receipts, a token for the next page, and an error.
	ListReceipts(ctx context.Context, tenantID string, customerID *string, limit int, nextToken *string) ([]domain.Receipt, *string, error)

	// FindReceiptsByCustomer retrieves every receipt of a customer dated on or before asOf,
	// ordered by (receipt_date, created_at) ascending.
	FindReceiptsByCustomer(ctx context.Context, tenantID, customerID string, asOf time.Time) ([]domain.Receipt, error)

	// FindReceiptsByTenant retrieves every receipt of a tenant dated on or before asOf.
	FindReceiptsByTenant(ctx context.Context, tenantID string, asOf time.Time) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// SaveReceipt persists a new receipt.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
