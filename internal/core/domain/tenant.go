package domain

import "time"

// Tenant represents an isolated environment containing customers, invoices, receipts, etc.
type Tenant struct {
	TenantID    string `json:"tenantID"`    // Primary Key (e.g., UUID)
	Name        string `json:"name"`        // User-defined name for the tenant
	Description string `json:"description"` // Optional description
	IsActive    bool   `json:"isActive"`    // Indicates whether the tenant is active or disabled
	AuditFields        // Embed common audit fields
}

// UserTenantRole defines the possible roles a user can have within a tenant.
type UserTenantRole string

const (
	RoleAdmin    UserTenantRole = "ADMIN"
	RoleMember   UserTenantRole = "MEMBER"
	RoleReadOnly UserTenantRole = "READONLY" // Users with read-only access to tenant data
	RoleRemoved  UserTenantRole = "REMOVED"  // For users who have been removed from the tenant
)

// UserTenant represents the membership of a User in a Tenant.
type UserTenant struct {
	UserID   string         `json:"userID"`   // FK -> users.user_id
	UserName string         `json:"userName"` // Name of the user
	TenantID string         `json:"tenantID"` // FK -> tenants.tenant_id
	Role     UserTenantRole `json:"role"`     // Role of the user in this specific tenant
	JoinedAt time.Time      `json:"joinedAt"` // Timestamp when the user joined the tenant
}
