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
)

// FollowUpService handles business logic related to collection follow-ups.
type FollowUpService struct {
	BaseService
	followUpRepo portsrepo.FollowUpRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewFollowUpService creates a new FollowUpService.
func NewFollowUpService(fr portsrepo.FollowUpRepositoryFacade, cr portsrepo.CustomerRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.FollowUpSvcFacade {
	return &FollowUpService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		followUpRepo: fr,
		customerRepo: cr,
	}
}

// Ensure FollowUpService implements the portssvc.FollowUpSvcFacade interface
var _ portssvc.FollowUpSvcFacade = (*FollowUpService)(nil)

// CreateFollowUp schedules a new collection follow-up. Requires MEMBER role.
func (s *FollowUpService) CreateFollowUp(ctx context.Context, tenantID string, req dto.CreateFollowUpRequest, creatorUserID string) (*domain.FollowUp, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, tenantID, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now()
	followUp := domain.FollowUp{
		FollowUpID:  uuid.NewString(),
		TenantID:    tenantID,
		CustomerID:  req.CustomerID,
		ScheduledAt: req.ScheduledAt,
		Note:        req.Note,
		Priority:    domain.FollowUpPriority(req.Priority),
		Status:      domain.FollowUpPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.followUpRepo.SaveFollowUp(ctx, followUp); err != nil {
		s.LogError(ctx, err, "Failed to save follow-up in repository", slog.String("tenant_id", tenantID), slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Follow-up scheduled", slog.String("follow_up_id", followUp.FollowUpID), slog.String("tenant_id", tenantID))
	return &followUp, nil
}

// GetFollowUpByID retrieves a follow-up. Requires READONLY role.
func (s *FollowUpService) GetFollowUpByID(ctx context.Context, tenantID, followUpID string, requestingUserID string) (*domain.FollowUp, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.followUpRepo.FindFollowUpByID(ctx, tenantID, followUpID)
}

// ListFollowUps retrieves follow-ups of a tenant. Requires READONLY role.
func (s *FollowUpService) ListFollowUps(ctx context.Context, tenantID string, requestingUserID string, status *domain.FollowUpStatus) ([]domain.FollowUp, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	followUps, err := s.followUpRepo.ListFollowUps(ctx, tenantID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list follow-ups", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if followUps == nil {
		return []domain.FollowUp{}, nil
	}
	return followUps, nil
}

// CompleteFollowUp marks a pending follow-up completed. Requires MEMBER role.
// Completing an already-completed follow-up is a conflict.
func (s *FollowUpService) CompleteFollowUp(ctx context.Context, tenantID, followUpID string, requestingUserID string) (*domain.FollowUp, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	followUp, err := s.followUpRepo.FindFollowUpByID(ctx, tenantID, followUpID)
	if err != nil {
		return nil, err
	}

	if followUp.Status == domain.FollowUpCompleted {
		return nil, apperrors.NewConflictError("follow-up is already completed")
	}

	now := time.Now()
	followUp.Status = domain.FollowUpCompleted
	followUp.CompletedAt = &now
	followUp.LastUpdatedAt = now
	followUp.LastUpdatedBy = requestingUserID

	if err := s.followUpRepo.UpdateFollowUp(ctx, *followUp); err != nil {
		s.LogError(ctx, err, "Failed to complete follow-up", slog.String("follow_up_id", followUpID))
		return nil, err
	}

	s.LogInfo(ctx, "Follow-up completed", slog.String("follow_up_id", followUpID), slog.String("tenant_id", tenantID))
	return followUp, nil
}

// DeleteFollowUp removes a pending follow-up. Requires MEMBER role.
// Completed follow-ups are kept as history and cannot be deleted.
func (s *FollowUpService) DeleteFollowUp(ctx context.Context, tenantID, followUpID string, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleMember); err != nil {
		return err
	}

	followUp, err := s.followUpRepo.FindFollowUpByID(ctx, tenantID, followUpID)
	if err != nil {
		return err
	}

	if followUp.Status == domain.FollowUpCompleted {
		return apperrors.NewConflictError("completed follow-ups cannot be deleted")
	}

	if err := s.followUpRepo.DeleteFollowUp(ctx, tenantID, followUpID); err != nil {
		s.LogError(ctx, err, "Failed to delete follow-up", slog.String("follow_up_id", followUpID))
		return err
	}

	s.LogInfo(ctx, "Follow-up deleted", slog.String("follow_up_id", followUpID), slog.String("tenant_id", tenantID))
	return nil
}
