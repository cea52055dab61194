package services

import (
	"context"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/recovhq/recov_backend/internal/dto"
)

// FollowUpReaderSvc defines read operations for follow-up data
type FollowUpReaderSvc interface {
	// GetFollowUpByID retrieves a specific follow-up by its ID.
	GetFollowUpByID(ctx context.Context, tenantID, followUpID string, requestingUserID string) (*domain.FollowUp, error)

	// ListFollowUps retrieves the follow-ups of a tenant, optionally filtered by status.
	ListFollowUps(ctx context.Context, tenantID string, requestingUserID string, status *domain.FollowUpStatus) ([]domain.FollowUp, error)
}

// FollowUpWriterSvc defines write operations for follow-up data
type FollowUpWriterSvc interface {
	// CreateFollowUp schedules a new collection follow-up.
	CreateFollowUp(ctx context.Context, tenantID string, req dto.CreateFollowUpRequest, creatorUserID string) (*domain.FollowUp, error)

	// CompleteFollowUp marks a pending follow-up as completed.
	CompleteFollowUp(ctx context.Context, tenantID, followUpID string, requestingUserID string) (*domain.FollowUp, error)

	// DeleteFollowUp removes a pending follow-up.
	DeleteFollowUp(ctx context.Context, tenantID, followUpID string, requestingUserID string) error
}

// FollowUpSvcFacade combines all follow-up-related service interfaces
type FollowUpSvcFacade interface {
	FollowUpReaderSvc
	FollowUpWriterSvc
}
