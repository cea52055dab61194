package repositories

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its ID within a tenant.
	FindCustomerByID(ctx context.Context, tenantID, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves customers of a tenant. When activeOnly is true,
	// deactivated customers are excluded.
	ListCustomers(ctx context.Context, tenantID string, activeOnly bool) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
