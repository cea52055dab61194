package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	portsrepo "github.com/recovhq/recov_backend/internal/core/ports/repositories"
	portssvc "github.com/recovhq/recov_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// LedgerService builds chronological customer statements.
type LedgerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(cr portsrepo.CustomerRepositoryFacade, ir portsrepo.InvoiceRepositoryFacade, rr portsrepo.ReceiptRepositoryFacade, authorizer portssvc.TenantAuthorizerSvc) portssvc.LedgerSvcFacade {
	return &LedgerService{
		BaseService:  BaseService{TenantAuthorizer: authorizer},
		customerRepo: cr,
		invoiceRepo:  ir,
		receiptRepo:  rr,
	}
}

// Ensure LedgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// CustomerLedger builds the merged invoice/receipt statement of one customer
// over an optional date range. Everything dated before fromDate folds into the
// opening balance; with no fromDate the opening balance is zero.
// Requires READONLY role.
func (s *LedgerService) CustomerLedger(ctx context.Context, tenantID, customerID string, fromDate, toDate *time.Time, requestingUserID string) (*domain.LedgerStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	horizon := farFuture
	if toDate != nil {
		horizon = *toDate
	}

	invoices, err := s.invoiceRepo.FindInvoicesByCustomer(ctx, tenantID, customerID, horizon)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for ledger", slog.String("customer_id", customerID))
		return nil, err
	}
	receipts, err := s.receiptRepo.FindReceiptsByCustomer(ctx, tenantID, customerID, horizon)
	if err != nil {
		s.LogError(ctx, err, "Failed to load receipts for ledger", slog.String("customer_id", customerID))
		return nil, err
	}

	openingBalance := decimal.Zero
	entries := make([]domain.LedgerEntry, 0, len(invoices)+len(receipts))

	for i := range invoices {
		inv := &invoices[i]
		if fromDate != nil && inv.InvoiceDate.Before(*fromDate) {
			openingBalance = openingBalance.Add(inv.Amount)
			continue
		}
		entries = append(entries, domain.LedgerEntry{
			EntryDate:   inv.InvoiceDate,
			CreatedAt:   inv.CreatedAt,
			EntryType:   domain.Debit,
			SourceID:    inv.InvoiceID,
			Reference:   inv.InvoiceNumber,
			Description: "Invoice " + inv.InvoiceNumber,
			Debit:       inv.Amount,
			Credit:      decimal.Zero,
		})
	}

	for i := range receipts {
		rct := &receipts[i]
		if fromDate != nil && rct.ReceiptDate.Before(*fromDate) {
			openingBalance = openingBalance.Sub(rct.Amount)
			continue
		}
		entries = append(entries, domain.LedgerEntry{
			EntryDate:   rct.ReceiptDate,
			CreatedAt:   rct.CreatedAt,
			EntryType:   domain.Credit,
			SourceID:    rct.ReceiptID,
			Reference:   rct.VoucherNumber,
			Description: string(rct.VoucherType) + " " + rct.VoucherNumber,
			Debit:       decimal.Zero,
			Credit:      rct.Amount,
		})
	}

	// Chronological merge; creation time breaks date ties, and the stable sort
	// keeps debits ahead of credits recorded at the same instant.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].EntryDate.Equal(entries[j].EntryDate) {
			return entries[i].EntryDate.Before(entries[j].EntryDate)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	running := openingBalance
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].RunningBalance = running
		totalDebits = totalDebits.Add(entries[i].Debit)
		totalCredits = totalCredits.Add(entries[i].Credit)
	}

	closing := openingBalance.Add(totalDebits).Sub(totalCredits)
	closingSide := domain.SideDr
	if closing.IsNegative() {
		closingSide = domain.SideCr
	}

	statement := &domain.LedgerStatement{
		CustomerID:     customer.CustomerID,
		CustomerName:   customer.Name,
		FromDate:       fromDate,
		ToDate:         toDate,
		OpeningBalance: openingBalance,
		Entries:        entries,
		TotalDebits:    totalDebits,
		TotalCredits:   totalCredits,
		ClosingBalance: closing.Abs(),
		ClosingSide:    closingSide,
	}

	s.LogDebug(ctx, "Customer ledger built", slog.String("customer_id", customerID), slog.Int("entry_count", len(entries)))
	return statement, nil
}
