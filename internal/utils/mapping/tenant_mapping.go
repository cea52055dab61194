package mapping

import (
	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:    m.TenantID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantSlice converts a slice of model Tenants to a slice of domain Tenants
func ToDomainTenantSlice(ms []models.Tenant) []domain.Tenant {
	ds := make([]domain.Tenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenant(m)
	}
	return ds
}

// ToDomainUserTenant converts a model UserTenant to a domain UserTenant
func ToDomainUserTenant(m models.UserTenant) domain.UserTenant {
	return domain.UserTenant{
		UserID:   m.UserID,
		UserName: m.UserName,
		TenantID: m.TenantID,
		Role:     domain.UserTenantRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToDomainUserTenantSlice converts a slice of model UserTenants to domain UserTenants
func ToDomainUserTenantSlice(ms []models.UserTenant) []domain.UserTenant {
	ds := make([]domain.UserTenant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUserTenant(m)
	}
	return ds
}
