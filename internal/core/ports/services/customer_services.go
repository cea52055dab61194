package services

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its ID.
	GetCustomerByID(ctx context.Context, tenantID, customerID string, requestingUserID string) (*domain.Customer, error)

	// ListCustomers retrieves the customers of a tenant.
	ListCustomers(ctx context.Context, tenantID string, requestingUserID string, includeInactive bool) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, tenantID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates customer details.
	UpdateCustomer(ctx context.Context, tenantID, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)

	// DeactivateCustomer marks a customer as inactive (soft delete).
	DeactivateCustomer(ctx context.Context, tenantID, customerID string, requestingUserID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
