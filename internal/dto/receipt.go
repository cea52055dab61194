package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest defines data for recording money received.
type CreateReceiptRequest struct {
	CustomerID    string          `json:"customerID" binding:"required"`
	VoucherType   string          `json:"voucherType" binding:"required,oneof=RECEIPT ADVANCE ADJUSTMENT"`
	VoucherNumber string          `json:"voucherNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ReceiptDate   string          `json:"receiptDate" binding:"required,datetime=2006-01-02"`
}

// ListReceiptsParams defines query parameters for listing receipts.
type ListReceiptsParams struct {
	CustomerID *string `form:"customerID"`
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
}

// ReceiptResponse defines data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID     string          `json:"receiptID"`
	TenantID      string          `json:"tenantID"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	VoucherType   string          `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"`
	Amount        decimal.Decimal `json:"amount"`
	ReceiptDate   string          `json:"receiptDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToReceiptResponse converts domain.Receipt to DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		TenantID:      r.TenantID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		VoucherType:   string(r.VoucherType),
		VoucherNumber: r.VoucherNumber,
		Amount:        r.Amount,
		ReceiptDate:   r.ReceiptDate.Format("2006-01-02"),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
}

// ListReceiptsResponse wraps a paginated list of receipts.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListReceiptsResponse converts a slice of domain.Receipt plus pagination token to DTO.
func ToListReceiptsResponse(rs []domain.Receipt, nextToken *string) ListReceiptsResponse {
	list := make([]ReceiptResponse, len(rs))
	for i := range rs {
		list[i] = ToReceiptResponse(&rs[i])
	}
	return ListReceiptsResponse{Receipts: list, NextToken: nextToken}
}
