package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a receivable raised against a customer.
// customer_name is denormalized for display; customer_id is the join key.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	TenantID      string          `db:"tenant_id"`
	CustomerID    string          `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	InvoiceNumber string          `db:"invoice_number"`
	Amount        decimal.Decimal `db:"amount"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	AuditFields
}
