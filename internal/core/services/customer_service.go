package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recovhq/recov_backend/internal/apperrors"
	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerService handles business logic related to customer master records.
type CustomerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(cr portsrepo.CustomerRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.CustomerSvcFacade {
	return &CustomerService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		customerRepo: cr,
	}
}

// Ensure CustomerService implements the portssvc.CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// CreateCustomer persists a new customer. Requires MEMBER role.
func (s *CustomerService) CreateCustomer(ctx context.Context, tenantID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	if !domain.IsValidCustomerCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown customer category %s", apperrors.ErrValidation, req.Category)
	}
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		TenantID:    tenantID,
		Name:        req.Name,
		Category:    req.Category,
		CreditLimit: req.CreditLimit,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer in repository", slog.String("tenant_id", tenantID), slog.String("customer_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully", slog.String("customer_id", customer.CustomerID), slog.String("tenant_id", tenantID))
	return &customer, nil
}

// GetCustomerByID retrieves a customer. Requires READONLY role.
func (s *CustomerService) GetCustomerByID(ctx context.Context, tenantID, customerID string, requestingUserID string) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

// ListCustomers retrieves the customers of a tenant. Requires READONLY role.
func (s *CustomerService) ListCustomers(ctx context.Context, tenantID string, requestingUserID string, includeInactive bool) ([]domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListCustomers(ctx, tenantID, !includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// UpdateCustomer updates customer details. Requires MEMBER role.
func (s *CustomerService) UpdateCustomer(ctx context.Context, tenantID, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Category != nil {
		if !domain.IsValidCustomerCategory(*req.Category) {
			return nil, fmt.Errorf("%w: unknown customer category %s", apperrors.ErrValidation, *req.Category)
		}
		customer.Category = *req.Category
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit cannot be negative", apperrors.ErrValidation)
		}
		customer.CreditLimit = *req.CreditLimit
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer in repository", slog.String("customer_id", customerID))
		return nil, err
	}

	return customer, nil
}

// DeactivateCustomer marks a customer inactive. Requires MEMBER role.
// Historical invoices and receipts stay in every report.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, tenantID, customerID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		return err
	}

	if !customer.IsActive {
		return nil // Already inactive; idempotent.
	}

	customer.IsActive = false
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to deactivate customer", slog.String("customer_id", customerID))
		return err
	}

	s.LogInfo(ctx, "Customer deactivated", slog.String("customer_id", customerID), slog.String("tenant_id", tenantID))
	return nil
}

// requirePositiveAmount rejects zero or negative money amounts.
func requirePositiveAmount(amount decimal.Decimal, what string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s amount must be positive", apperrors.ErrValidation, what)
	}
	return nil
}
