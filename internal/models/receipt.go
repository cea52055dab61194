package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType mirrors the voucher enum stored in receipts.voucher_type.
type VoucherType string

// Receipt is money received from a customer.
type Receipt struct {
	ReceiptID     string          `db:"receipt_id"`
	TenantID      string          `db:"tenant_id"`
	CustomerID    string          `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	VoucherType   VoucherType     `db:"voucher_type"`
	VoucherNumber string          `db:"voucher_number"`
	Amount        decimal.Decimal `db:"amount"`
	ReceiptDate   time.Time       `db:"receipt_date"`
	AuditFields
}
