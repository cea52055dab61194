package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines data for creating a new customer.
// Category must be one of the four fixed credit-control groups.
type CreateCustomerRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Category    domain.CustomerCategory `json:"category" binding:"required,customercategory"`
	CreditLimit decimal.Decimal         `json:"creditLimit"`
	Phone       string                  `json:"phone"`
	Email       string                  `json:"email" binding:"omitempty,email"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCustomerRequest struct {
	Name        *string                  `json:"name"`
	Category    *domain.CustomerCategory `json:"category" binding:"omitempty,customercategory"`
	CreditLimit *decimal.Decimal         `json:"creditLimit"`
	Phone       *string                  `json:"phone"`
	Email       *string                  `json:"email" binding:"omitempty,email"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// CustomerResponse defines data returned for a customer.
type CustomerResponse struct {
	CustomerID    string                  `json:"customerID"`
	TenantID      string                  `json:"tenantID"`
	Name          string                  `json:"name"`
	Category      domain.CustomerCategory `json:"category"`
	CreditLimit   decimal.Decimal         `json:"creditLimit"`
	Phone         string                  `json:"phone,omitempty"`
	Email         string                  `json:"email,omitempty"`
	IsActive      bool                    `json:"isActive"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts domain.Customer to DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		TenantID:      c.TenantID,
		Name:          c.Name,
		Category:      c.Category,
		CreditLimit:   c.CreditLimit,
		Phone:         c.Phone,
		Email:         c.Email,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListCustomersResponse wraps a list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToListCustomersResponse converts a slice of domain.Customer to DTO.
func ToListCustomersResponse(cs []domain.Customer) ListCustomersResponse {
	list := make([]CustomerResponse, len(cs))
	for i := range cs {
		list[i] = ToCustomerResponse(&cs[i])
	}
	return ListCustomersResponse{Customers: list}
}
