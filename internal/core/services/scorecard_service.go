package services

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/recovhq/recov_backend/internal/utils/receivables"
)

// Scorecard thresholds and penalty cap.
const (
	scoreStarMin    = 85
	scoreRegularMin = 60
	scoreRiskyMin   = 35
	maxDelayPenalty = 40
)

// ScorecardService computes per-customer payment behaviour scorecards.
type ScorecardService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
}

// NewScorecardService creates a new ScorecardService.
func NewScorecardService(cr portsrepo.CustomerRepositoryFacade, ir portsrepo.InvoiceRepositoryFacade, rr portsrepo.ReceiptRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.ScorecardSvcFacade {
	return &ScorecardService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		customerRepo: cr,
		invoiceRepo:  ir,
		receiptRepo:  rr,
	}
}

// Ensure ScorecardService implements the portssvc.ScorecardSvcFacade interface
var _ portssvc.ScorecardSvcFacade = (*ScorecardService)(nil)

// CustomerScorecard computes a customer's payment scorecard as of a date.
// Receipts settle against invoices FIFO. An invoice is on time when the
// receipt completing it lands on or before the due date; a settled-late or
// overdue-unsettled invoice is late; an unsettled invoice not yet due is
// pending and does not affect the rate. Requires READONLY role.
func (s *ScorecardService) CustomerScorecard(ctx context.Context, tenantID, customerID string, asOf time.Time, requestingUserID string) (*domain.Scorecard, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindInvoicesByCustomer(ctx, tenantID, customerID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for scorecard", slog.String("customer_id", customerID))
		return nil, err
	}
	receipts, err := s.receiptRepo.FindReceiptsByCustomer(ctx, tenantID, customerID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load receipts for scorecard", slog.String("customer_id", customerID))
		return nil, err
	}

	settlements := receivables.SettleFIFO(invoices, receipts)

	onTimeCount := 0
	lateCount := 0
	pendingCount := 0
	totalDelayDays := 0

	for _, st := range settlements {
		switch {
		case st.SettledAt != nil:
			if st.SettledAt.After(st.Invoice.DueDate) {
				lateCount++
				totalDelayDays += receivables.DaysBetween(st.Invoice.DueDate, *st.SettledAt)
			} else {
				onTimeCount++
			}
		case st.Invoice.DueDate.Before(asOf):
			// Unsettled and past due: late, with the delay still growing.
			lateCount++
			totalDelayDays += receivables.DaysBetween(st.Invoice.DueDate, asOf)
		default:
			pendingCount++
		}
	}

	dueCount := onTimeCount + lateCount
	onTimeRate := 1.0
	if dueCount > 0 {
		onTimeRate = float64(onTimeCount) / float64(dueCount)
	}

	avgDelayDays := 0.0
	if lateCount > 0 {
		avgDelayDays = float64(totalDelayDays) / float64(lateCount)
	}

	score := paymentScore(onTimeRate, avgDelayDays)

	scorecard := &domain.Scorecard{
		CustomerID:     customer.CustomerID,
		CustomerName:   customer.Name,
		AsOf:           asOf,
		InvoiceCount:   len(settlements),
		OnTimeCount:    onTimeCount,
		LateCount:      lateCount,
		PendingCount:   pendingCount,
		OnTimeRate:     onTimeRate,
		AvgDelayDays:   avgDelayDays,
		PaymentScore:   score,
		Classification: classify(score),
	}

	s.LogDebug(ctx, "Scorecard computed", slog.String("customer_id", customerID), slog.Int("score", score))
	return scorecard, nil
}

// paymentScore maps the on-time rate and average delay to a 0..100 score.
// The delay penalty is capped so one very old invoice cannot zero out an
// otherwise reasonable history.
func paymentScore(onTimeRate, avgDelayDays float64) int {
	base := int(math.Round(onTimeRate * 100))
	penalty := int(math.Round(avgDelayDays))
	if penalty > maxDelayPenalty {
		penalty = maxDelayPenalty
	}
	score := base - penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func classify(score int) domain.PaymentClassification {
	switch {
	case score >= scoreStarMin:
		return domain.ClassStar
	case score >= scoreRegularMin:
		return domain.ClassRegular
	case score >= scoreRiskyMin:
		return domain.ClassRisky
	default:
		return domain.ClassCritical
	}
}
