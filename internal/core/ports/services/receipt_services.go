package services

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipt data
type ReceiptReaderSvc interface {
	// GetReceiptByID retrieves a specific receipt by its ID.
	GetReceiptByID(ctx context.Context, tenantID, receiptID string, requestingUserID string) (*domain.Receipt, error)

	// ListReceipts retrieves a paginated list of receipts in a tenant.
	ListReceipts(ctx context.Context, tenantID string, requestingUserID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)
}

// ReceiptWriterSvc defines write operations for receipt data
type ReceiptWriterSvc interface {
	// CreateReceipt records money received from a customer.
	CreateReceipt(ctx context.Context, tenantID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.Receipt, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
