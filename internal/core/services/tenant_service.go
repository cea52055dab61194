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
	"github.com/recovhq/recov_backend/internal/middleware"
)

// roleRank orders tenant roles so a higher role satisfies a lower requirement.
// REMOVED never satisfies anything.
var roleRank = map[domain.UserTenantRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

func hasRequiredRole(actual, required domain.UserTenantRole) bool {
	actualRank, ok := roleRank[actual]
	if !ok {
		return false
	}
	requiredRank, ok := roleRank[required]
	if !ok {
		return false
	}
	return actualRank >= requiredRank
}

// TenantService handles business logic related to tenants and memberships.
type TenantService struct {
	tenantRepo portsrepo.TenantRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(tr portsrepo.TenantRepositoryFacade, ur portsrepo.UserRepositoryFacade) portssvc.TenantSvcFacade {
	return &TenantService{
		tenantRepo: tr,
		userRepo:   ur,
	}
}

// Ensure TenantService implements the portssvc.TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*TenantService)(nil)

// CreateTenant creates a new tenant and makes the creator the initial admin.
func (s *TenantService) CreateTenant(ctx context.Context, name, description, creatorUserID string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	newTenantID := uuid.NewString()

	tenant := domain.Tenant{
		TenantID:    newTenantID,
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		logger.Error("Failed to save tenant in repository", slog.String("error", err.Error()), slog.String("tenant_name", name))
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	membership := domain.UserTenant{
		UserID:   creatorUserID,
		TenantID: newTenantID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin to new tenant", slog.String("error", err.Error()), slog.String("tenant_id", newTenantID), slog.String("user_id", creatorUserID))
		return nil, fmt.Errorf("failed to add creator to tenant: %w", err)
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", newTenantID), slog.String("creator_user_id", creatorUserID))
	return &tenant, nil
}

// FindTenantByID retrieves a tenant by its ID.
func (s *TenantService) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find tenant by ID in repository", slog.String("error", err.Error()), slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	return tenant, nil
}

// ListUserTenants retrieves the list of tenants a given user belongs to.
func (s *TenantService) ListUserTenants(ctx context.Context, userID string, includeDisabled bool) ([]domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenants, err := s.tenantRepo.ListTenantsByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list tenants for user from repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list tenants for user %s: %w", userID, err)
	}

	if !includeDisabled {
		active := make([]domain.Tenant, 0, len(tenants))
		for _, t := range tenants {
			if t.IsActive {
				active = append(active, t)
			}
		}
		tenants = active
	}

	if tenants == nil {
		return []domain.Tenant{}, nil
	}
	return tenants, nil
}

// ListTenantUsers retrieves all memberships of a tenant. Requester must be a member.
func (s *TenantService) ListTenantUsers(ctx context.Context, tenantID string, requestingUserID string) ([]domain.UserTenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	memberships, err := s.tenantRepo.ListTenantUsers(ctx, tenantID)
	if err != nil {
		logger.Error("Failed to list tenant users from repository", slog.String("error", err.Error()), slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list users for tenant %s: %w", tenantID, err)
	}
	if memberships == nil {
		return []domain.UserTenant{}, nil
	}
	return memberships, nil
}

// DeactivateTenant marks a tenant inactive. Admin only.
func (s *TenantService) DeactivateTenant(ctx context.Context, tenantID string, requestingUserID string) error {
	return s.setTenantActive(ctx, tenantID, requestingUserID, false)
}

// ActivateTenant marks a tenant active again. Admin only.
func (s *TenantService) ActivateTenant(ctx context.Context, tenantID string, requestingUserID string) error {
	return s.setTenantActive(ctx, tenantID, requestingUserID, true)
}

func (s *TenantService) setTenantActive(ctx context.Context, tenantID, requestingUserID string, active bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return err
	}

	tenant.IsActive = active
	tenant.LastUpdatedAt = time.Now()
	tenant.LastUpdatedBy = requestingUserID

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		logger.Error("Failed to update tenant active flag", slog.String("error", err.Error()), slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}

	logger.Info("Tenant active flag updated", slog.String("tenant_id", tenantID), slog.Bool("is_active", active))
	return nil
}

// AddUserToTenant adds a user to a tenant with a specific role. Admin only.
func (s *TenantService) AddUserToTenant(ctx context.Context, addingUserID, targetUserID, tenantID string, role domain.UserTenantRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, addingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s not found", apperrors.ErrValidation, targetUserID)
		}
		return fmt.Errorf("failed to validate target user: %w", err)
	}

	now := time.Now()
	membership := domain.UserTenant{
		UserID:   targetUserID,
		TenantID: tenantID,
		Role:     role,
		JoinedAt: now,
	}

	if err := s.tenantRepo.AddUserToTenant(ctx, membership); err != nil {
		logger.Error("Failed to add user to tenant in repository", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to add user %s to tenant %s: %w", targetUserID, tenantID, err)
	}

	logger.Info("User added to tenant successfully", slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID), slog.String("role", string(role)), slog.String("added_by_user_id", addingUserID))
	return nil
}

// RemoveUserFromTenant marks a membership REMOVED. Admin only; admins cannot remove themselves.
func (s *TenantService) RemoveUserFromTenant(ctx context.Context, requestingUserID, targetUserID, tenantID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	if requestingUserID == targetUserID {
		return fmt.Errorf("%w: admins cannot remove themselves from a tenant", apperrors.ErrValidation)
	}

	if err := s.tenantRepo.UpdateUserTenantRole(ctx, targetUserID, tenantID, domain.RoleRemoved); err != nil {
		logger.Error("Failed to remove user from tenant", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID))
		return err
	}

	logger.Info("User removed from tenant", slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID), slog.String("removed_by_user_id", requestingUserID))
	return nil
}

// UpdateUserTenantRole changes a member's role. Admin only.
func (s *TenantService) UpdateUserTenantRole(ctx context.Context, requestingUserID, targetUserID, tenantID string, newRole domain.UserTenantRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, requestingUserID, tenantID, domain.RoleAdmin); err != nil {
		return err
	}

	if newRole == domain.RoleRemoved {
		return fmt.Errorf("%w: use the remove endpoint to revoke membership", apperrors.ErrValidation)
	}

	if requestingUserID == targetUserID && newRole != domain.RoleAdmin {
		return fmt.Errorf("%w: admins cannot demote themselves", apperrors.ErrValidation)
	}

	if err := s.tenantRepo.UpdateUserTenantRole(ctx, targetUserID, tenantID, newRole); err != nil {
		logger.Error("Failed to update user tenant role", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID))
		return err
	}

	logger.Info("User tenant role updated", slog.String("target_user_id", targetUserID), slog.String("tenant_id", tenantID), slog.String("new_role", string(newRole)))
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within a tenant.
// Returns apperrors.ErrForbidden when the user is not a member, was removed, or
// lacks the required role.
func (s *TenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.UserTenantRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.tenantRepo.FindUserTenantRole(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: user is not a member of tenant", slog.String("user_id", userID), slog.String("tenant_id", tenantID))
			return apperrors.ErrForbidden
		}
		logger.Error("Failed to check user tenant role in repository", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		logger.Warn("Authorization failed: user lacks required role", slog.String("user_id", userID), slog.String("tenant_id", tenantID), slog.String("user_role", string(membership.Role)), slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}
