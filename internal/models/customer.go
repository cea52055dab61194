package models

import "github.com/shopspring/decimal"

// CustomerCategory mirrors the category enum stored in customers.category.
type CustomerCategory string

// Customer is the receivables master record for a buyer.
type Customer struct {
	CustomerID  string           `db:"customer_id"`
	TenantID    string           `db:"tenant_id"`
	Name        string           `db:"name"`
	Category    CustomerCategory `db:"category"`
	CreditLimit decimal.Decimal  `db:"credit_limit"`
	Phone       string           `db:"phone"`
	Email       string           `db:"email"`
	IsActive    bool             `db:"is_active"`
	AuditFields
}
