package models

import "time"

// Tenant represents an isolated receivables environment.
type Tenant struct {
	TenantID    string `db:"tenant_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// UserTenantRole mirrors the role enum stored in user_tenants.role.
type UserTenantRole string

// UserTenant links a user to a tenant with a role.
type UserTenant struct {
	UserID   string         `db:"user_id"`
	UserName string         `db:"user_name"` // Joined from users.name for listing
	TenantID string         `db:"tenant_id"`
	Role     UserTenantRole `db:"role"`
	JoinedAt time.Time      `db:"joined_at"`
}
