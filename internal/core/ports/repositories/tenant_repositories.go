package repositories

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenantsByUserID retrieves all tenants a user belongs to.
	ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant updates an existing tenant's details.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantMembershipManager defines operations for managing tenant memberships
type TenantMembershipManager interface {
	// AddUserToTenant adds a user to a tenant with a specific role.
	AddUserToTenant(ctx context.Context, membership domain.UserTenant) error

	// FindUserTenantRole retrieves the role of a user in a tenant.
	FindUserTenantRole(ctx context.Context, userID, tenantID string) (*domain.UserTenant, error)

	// UpdateUserTenantRole changes the role of an existing membership.
	UpdateUserTenantRole(ctx context.Context, userID, tenantID string, role domain.UserTenantRole) error

	// ListTenantUsers retrieves all memberships of a tenant.
	ListTenantUsers(ctx context.Context, tenantID string) ([]domain.UserTenant, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
// This is a facade for clients that need access to all operations
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantMembershipManager
}

// TenantRepositoryWithTx extends TenantRepositoryFacade with transaction capabilities
type TenantRepositoryWithTx interface {
	TenantRepositoryFacade
	TransactionManager
}
