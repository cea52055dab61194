package repositories

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// FollowUpReader defines read operations for follow-up data
type FollowUpReader interface {
	// FindFollowUpByID retrieves a specific follow-up by its ID within a tenant.
	FindFollowUpByID(ctx context.Context, tenantID, followUpID string) (*domain.FollowUp, error)

	// ListFollowUps retrieves follow-ups of a tenant filtered by status,
	// ordered by scheduled_at ascending. A nil status returns all.
	ListFollowUps(ctx context.Context, tenantID string, status *domain.FollowUpStatus) ([]domain.FollowUp, error)

	// ListFollowUpsByCustomer retrieves all follow-ups against one customer.
	ListFollowUpsByCustomer(ctx context.Context, tenantID, customerID string) ([]domain.FollowUp, error)
}

// FollowUpWriter defines write operations for follow-up data
type FollowUpWriter interface {
	// SaveFollowUp persists a new follow-up.
	SaveFollowUp(ctx context.Context, followUp domain.FollowUp) error

	// UpdateFollowUp updates an existing follow-up.
	UpdateFollowUp(ctx context.Context, followUp domain.FollowUp) error

	// DeleteFollowUp removes a follow-up.
	DeleteFollowUp(ctx context.Context, tenantID, followUpID string) error
}

// FollowUpRepositoryFacade combines all follow-up-related repository interfaces
type FollowUpRepositoryFacade interface {
	FollowUpReader
	FollowUpWriter
}
