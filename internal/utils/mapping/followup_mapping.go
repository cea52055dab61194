package mapping

import (
	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/models"
)

// ToModelFollowUp converts a domain FollowUp to a model FollowUp
func ToModelFollowUp(d domain.FollowUp) models.FollowUp {
	return models.FollowUp{
		FollowUpID:  d.FollowUpID,
		TenantID:    d.TenantID,
		CustomerID:  d.CustomerID,
		ScheduledAt: d.ScheduledAt,
		Note:        d.Note,
		Priority:    string(d.Priority),
		Status:      string(d.Status),
		CompletedAt: d.CompletedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFollowUp converts a model FollowUp to a domain FollowUp
func ToDomainFollowUp(m models.FollowUp) domain.FollowUp {
	return domain.FollowUp{
		FollowUpID:  m.FollowUpID,
		TenantID:    m.TenantID,
		CustomerID:  m.CustomerID,
		ScheduledAt: m.ScheduledAt,
		Note:        m.Note,
		Priority:    domain.FollowUpPriority(m.Priority),
		Status:      domain.FollowUpStatus(m.Status),
		CompletedAt: m.CompletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFollowUpSlice converts a slice of model FollowUps to a slice of domain FollowUps
func ToDomainFollowUpSlice(ms []models.FollowUp) []domain.FollowUp {
	ds := make([]domain.FollowUp, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFollowUp(m)
	}
	return ds
}
