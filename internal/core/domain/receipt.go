package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType categorizes the money received.
type VoucherType string

const (
	VoucherReceipt    VoucherType = "RECEIPT"    // Ordinary payment against invoices
	VoucherAdvance    VoucherType = "ADVANCE"    // Money received before any invoice
	VoucherAdjustment VoucherType = "ADJUSTMENT" // Credit note, write-off, etc.
)

// Receipt represents money received from a customer.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"`  // Primary Key (e.g., UUID)
	TenantID      string          `json:"tenantID"`   // FK -> tenants.tenant_id (NON-NULL)
	CustomerID    string          `json:"customerID"` // FK -> customers.customer_id (NON-NULL)
	CustomerName  string          `json:"customerName"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherNumber string          `json:"voucherNumber"`
	Amount        decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	ReceiptDate   time.Time       `json:"receiptDate"`
	AuditFields
}
