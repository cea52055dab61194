package services

import (
	"context"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
)

// DebtorsSvcFacade defines operations for the tenant-wide debtors report
type DebtorsSvcFacade interface {
	// DebtorsReport aggregates per-customer invoice and receipt totals as of a
	// date and returns the customers that still owe money, grouped by category.
	DebtorsReport(ctx context.Context, tenantID string, asOf time.Time, requestingUserID string) (*domain.DebtorsReport, error)
}

// LedgerSvcFacade defines operations for customer statements
type LedgerSvcFacade interface {
	// CustomerLedger builds the chronological statement of one customer over an
	// optional date range, with opening and closing balances.
	CustomerLedger(ctx context.Context, tenantID, customerID string, fromDate, toDate *time.Time, requestingUserID string) (*domain.LedgerStatement, error)
}

// ScorecardSvcFacade defines operations for payment-behaviour scoring
type ScorecardSvcFacade interface {
	// CustomerScorecard computes a customer's payment scorecard as of a date.
	CustomerScorecard(ctx context.Context, tenantID, customerID string, asOf time.Time, requestingUserID string) (*domain.Scorecard, error)
}
