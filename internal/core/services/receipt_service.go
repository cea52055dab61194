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

// ReceiptService handles business logic related to receipts.
// Receipts are immutable once recorded; corrections go in as ADJUSTMENT vouchers.
type ReceiptService struct {
	BaseService
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(rr portsrepo.ReceiptRepositoryFacade, cr portsrepo.CustomerRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.ReceiptSvcFacade {
	return &ReceiptService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		receiptRepo:  rr,
		customerRepo: cr,
	}
}

// Ensure ReceiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

// CreateReceipt records money received from a customer. Requires MEMBER role.
func (s *ReceiptService) CreateReceipt(ctx context.Context, tenantID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.Receipt, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleMember); err != nil {
		return nil, err
	}

	if err := requirePositiveAmount(req.Amount, "receipt"); err != nil {
		return nil, err
	}

	receiptDate, err := parseCalendarDate(req.ReceiptDate, "receiptDate")
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s not found", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}
	if !customer.IsActive {
		return nil, fmt.Errorf("%w: customer %s is deactivated", apperrors.ErrValidation, req.CustomerID)
	}

	now := time.Now()
	receipt := domain.Receipt{
		ReceiptID:     uuid.NewString(),
		TenantID:      tenantID,
		CustomerID:    customer.CustomerID,
		CustomerName:  customer.Name,
		VoucherType:   domain.VoucherType(req.VoucherType),
		VoucherNumber: req.VoucherNumber,
		Amount:        req.Amount,
		ReceiptDate:   receiptDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt in repository", slog.String("tenant_id", tenantID), slog.String("voucher_number", req.VoucherNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt recorded successfully", slog.String("receipt_id", receipt.ReceiptID), slog.String("tenant_id", tenantID))
	return &receipt, nil
}

// GetReceiptByID retrieves a receipt. Requires READONLY role.
func (s *ReceiptService) GetReceiptByID(ctx context.Context, tenantID, receiptID string, requestingUserID string) (*domain.Receipt, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, tenantID, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receipt by ID", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	return receipt, nil
}

// ListReceipts retrieves a paginated list of receipts. Requires READONLY role.
func (s *ReceiptService) ListReceipts(ctx context.Context, tenantID string, requestingUserID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	receipts, nextToken, err := s.receiptRepo.ListReceipts(ctx, tenantID, params.CustomerID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts", slog.String("tenant_id", tenantID))
		return nil, err
	}

	resp := dto.ToListReceiptsResponse(receipts, nextToken)
	return &resp, nil
}
