package services

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// TenantReaderSvc defines read operations for tenant data
type TenantReaderSvc interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListUserTenants retrieves tenants a user belongs to.
	// If includeDisabled is true, it includes inactive tenants.
	ListUserTenants(ctx context.Context, userID string, includeDisabled bool) ([]domain.Tenant, error)

	// ListTenantUsers retrieves all users and their roles for a specific tenant.
	// Only members of the tenant can access this data.
	ListTenantUsers(ctx context.Context, tenantID string, requestingUserID string) ([]domain.UserTenant, error)
}

// TenantWriterSvc defines write operations for tenant data
type TenantWriterSvc interface {
	// CreateTenant persists a new tenant; the creator becomes its ADMIN.
	CreateTenant(ctx context.Context, name, description, creatorUserID string) (*domain.Tenant, error)

	// DeactivateTenant marks a tenant as inactive.
	DeactivateTenant(ctx context.Context, tenantID string, requestingUserID string) error

	// ActivateTenant marks a tenant as active.
	ActivateTenant(ctx context.Context, tenantID string, requestingUserID string) error
}

// TenantMembershipSvc defines operations for managing tenant membership
type TenantMembershipSvc interface {
	// AddUserToTenant adds a user to a tenant with a specific role.
	AddUserToTenant(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.UserTenantRole) error

	// RemoveUserFromTenant removes a user from a tenant.
	// Only tenant admins can remove users.
	RemoveUserFromTenant(ctx context.Context, requestingUserID, targetUserID, tenantID string) error

	// UpdateUserTenantRole updates a user's role in a tenant.
	// Only tenant admins can update user roles.
	UpdateUserTenantRole(ctx context.Context, requestingUserID, targetUserID, tenantID string, newRole domain.UserTenantRole) error
}

// TenantAuthorizerSvc defines operations for tenant authorization
type TenantAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a tenant.
	AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error
}

// TenantSvcFacade combines all tenant-related service interfaces
// This is a facade for clients that need access to all operations
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
	TenantMembershipSvc
	TenantAuthorizerSvc
}
