package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a receivable raised against a customer.
// CustomerName is denormalized for display; CustomerID is the join key.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`  // Primary Key (e.g., UUID)
	TenantID      string          `json:"tenantID"`   // FK -> tenants.tenant_id (NON-NULL)
	CustomerID    string          `json:"customerID"` // FK -> customers.customer_id (NON-NULL)
	CustomerName  string          `json:"customerName"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	AuditFields
}
