package domain

import "github.com/shopspring/decimal"

// CustomerCategory is the credit-control grouping assigned to a customer.
// Categories are assigned by external credit-control rules; the API only
// stores and reports on them.
type CustomerCategory string

const (
	CategoryAlpha CustomerCategory = "ALPHA"
	CategoryBeta  CustomerCategory = "BETA"
	CategoryGamma CustomerCategory = "GAMMA"
	CategoryDelta CustomerCategory = "DELTA"
)

// CustomerCategories lists every category in fixed report order.
var CustomerCategories = []CustomerCategory{CategoryAlpha, CategoryBeta, CategoryGamma, CategoryDelta}

// IsValidCustomerCategory reports whether c is one of the fixed categories.
func IsValidCustomerCategory(c CustomerCategory) bool {
	switch c {
	case CategoryAlpha, CategoryBeta, CategoryGamma, CategoryDelta:
		return true
	}
	return false
}

// Customer is the receivables master record for a buyer.
type Customer struct {
	CustomerID  string           `json:"customerID"` // Primary Key (e.g., UUID)
	TenantID    string           `json:"tenantID"`   // FK -> tenants.tenant_id (NON-NULL)
	Name        string           `json:"name"`
	Category    CustomerCategory `json:"category"`
	CreditLimit decimal.Decimal  `json:"creditLimit"` // Zero means no limit recorded
	Phone       string           `json:"phone"`
	Email       string           `json:"email"`
	IsActive    bool             `json:"isActive"` // Soft delete or status flag
	AuditFields
}
