package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines data for raising a new invoice.
// Dates use the YYYY-MM-DD calendar-date format.
type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customerID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	InvoiceDate   string          `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	DueDate       string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
// Amount and customer are immutable; only reference fields may change, and
// only while nothing has settled against the invoice.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string `json:"invoiceNumber"`
	InvoiceDate   *string `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate       *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	CustomerID *string `form:"customerID"`
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
}

// InvoiceResponse defines data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	TenantID      string          `json:"tenantID"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceDate   string          `json:"invoiceDate"`
	DueDate       string          `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToInvoiceResponse converts domain.Invoice to DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		TenantID:      inv.TenantID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
	}
}

// ListInvoicesResponse wraps a paginated list of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice plus pagination token to DTO.
func ToListInvoicesResponse(invs []domain.Invoice, nextToken *string) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(invs))
	for i := range invs {
		list[i] = ToInvoiceResponse(&invs[i])
	}
	return ListInvoicesResponse{Invoices: list, NextToken: nextToken}
}
