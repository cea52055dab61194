package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// --- Tenant DTOs ---

// CreateTenantRequest defines data for creating a new tenant.
type CreateTenantRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID      string    `json:"tenantID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		Description:   t.Description,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListTenantsResponse wraps a list of tenants.
type ListTenantsResponse struct {
	Tenants []TenantResponse `json:"tenants"`
}

// ToListTenantsResponse converts a slice of domain.Tenant to DTO.
func ToListTenantsResponse(ts []domain.Tenant) ListTenantsResponse {
	list := make([]TenantResponse, len(ts))
	for i := range ts {
		list[i] = ToTenantResponse(&ts[i])
	}
	return ListTenantsResponse{Tenants: list}
}

// --- User Tenant Membership DTOs ---

// AddUserToTenantRequest defines data for adding a user to a tenant.
type AddUserToTenantRequest struct {
	UserID string                `json:"userID" binding:"required"`
	Role   domain.UserTenantRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UserTenantResponse defines data returned about a user's membership.
type UserTenantResponse struct {
	UserID   string                `json:"userID"`
	UserName string                `json:"userName"`
	TenantID string                `json:"tenantID"`
	Role     domain.UserTenantRole `json:"role"`
	JoinedAt time.Time             `json:"joinedAt"`
}

// ToUserTenantResponse converts domain.UserTenant to DTO.
func ToUserTenantResponse(ut *domain.UserTenant) UserTenantResponse {
	return UserTenantResponse{
		UserID:   ut.UserID,
		UserName: ut.UserName,
		TenantID: ut.TenantID,
		Role:     ut.Role,
		JoinedAt: ut.JoinedAt,
	}
}

// ListTenantUsersResponse wraps the memberships of a tenant.
type ListTenantUsersResponse struct {
	Users []UserTenantResponse `json:"users"`
}

// ToListTenantUsersResponse converts a slice of domain.UserTenant to DTO.
func ToListTenantUsersResponse(uts []domain.UserTenant) ListTenantUsersResponse {
	list := make([]UserTenantResponse, len(uts))
	for i := range uts {
		list[i] = ToUserTenantResponse(&uts[i])
	}
	return ListTenantUsersResponse{Users: list}
}
