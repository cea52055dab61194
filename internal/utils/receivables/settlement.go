// Package receivables holds the pure allocation logic shared by the debtors
// report, the payment scorecard and the invoice write path.
package receivables

import (
	"sort"
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceSettlement tracks how much of one invoice has been covered by receipts.
type InvoiceSettlement struct {
	Invoice   domain.Invoice
	Settled   decimal.Decimal // Amount allocated so far
	Remaining decimal.Decimal // Invoice.Amount - Settled
	SettledAt *time.Time      // Date of the receipt that completed the invoice; nil while open
}

// SortInvoicesChronologically orders invoices by (invoiceDate, createdAt) ascending in place.
func SortInvoicesChronologically(invoices []domain.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		if !invoices[i].InvoiceDate.Equal(invoices[j].InvoiceDate) {
			return invoices[i].InvoiceDate.Before(invoices[j].InvoiceDate)
		}
		return invoices[i].CreatedAt.Before(invoices[j].CreatedAt)
	})
}

// SortReceiptsChronologically orders receipts by (receiptDate, createdAt) ascending in place.
func SortReceiptsChronologically(receipts []domain.Receipt) {
	sort.SliceStable(receipts, func(i, j int) bool {
		if !receipts[i].ReceiptDate.Equal(receipts[j].ReceiptDate) {
			return receipts[i].ReceiptDate.Before(receipts[j].ReceiptDate)
		}
		return receipts[i].CreatedAt.Before(receipts[j].CreatedAt)
	})
}

// SettleFIFO allocates receipt money to invoices oldest-first and returns one
// settlement per invoice, in chronological invoice order. Receipt money beyond
// the invoiced total (advances) is simply left unallocated; callers that care
// about the net balance compute it from raw sums, not from settlements.
func SettleFIFO(invoices []domain.Invoice, receipts []domain.Receipt) []InvoiceSettlement {
	invs := make([]domain.Invoice, len(invoices))
	copy(invs, invoices)
	SortInvoicesChronologically(invs)
	rcts := make([]domain.Receipt, len(receipts))
	copy(rcts, receipts)
	SortReceiptsChronologically(rcts)

	settlements := make([]InvoiceSettlement, len(invs))
	for i, inv := range invs {
		settlements[i] = InvoiceSettlement{
			Invoice:   inv,
			Settled:   decimal.Zero,
			Remaining: inv.Amount,
		}
	}

	next := 0 // Index of the oldest invoice that still has a remainder
	for _, rct := range rcts {
		available := rct.Amount
		for available.IsPositive() && next < len(settlements) {
			s := &settlements[next]
			if s.Remaining.LessThanOrEqual(available) {
				available = available.Sub(s.Remaining)
				s.Settled = s.Invoice.Amount
				s.Remaining = decimal.Zero
				settledAt := rct.ReceiptDate
				s.SettledAt = &settledAt
				next++
			} else {
				s.Settled = s.Settled.Add(available)
				s.Remaining = s.Remaining.Sub(available)
				available = decimal.Zero
			}
		}
	}
	return settlements
}

// HasSettledMoney reports whether any receipt money has been allocated to the
// given invoice under FIFO settlement. Invoices with settled money are immutable.
func HasSettledMoney(invoiceID string, invoices []domain.Invoice, receipts []domain.Receipt) bool {
	for _, s := range SettleFIFO(invoices, receipts) {
		if s.Invoice.InvoiceID == invoiceID {
			return s.Settled.IsPositive()
		}
	}
	return false
}

// AgingBuckets distributes the unsettled remainders across overdue buckets as
// of the given date. Remainders not yet due land in Current.
func AgingBuckets(settlements []InvoiceSettlement, asOf time.Time) domain.AgingBuckets {
	buckets := domain.AgingBuckets{
		Current:    decimal.Zero,
		Days1To30:  decimal.Zero,
		Days31To60: decimal.Zero,
		Days61To90: decimal.Zero,
		Days90Plus: decimal.Zero,
	}
	for _, s := range settlements {
		if !s.Remaining.IsPositive() {
			continue
		}
		overdue := DaysBetween(s.Invoice.DueDate, asOf)
		switch {
		case overdue <= 0:
			buckets.Current = buckets.Current.Add(s.Remaining)
		case overdue <= 30:
			buckets.Days1To30 = buckets.Days1To30.Add(s.Remaining)
		case overdue <= 60:
			buckets.Days31To60 = buckets.Days31To60.Add(s.Remaining)
		case overdue <= 90:
			buckets.Days61To90 = buckets.Days61To90.Add(s.Remaining)
		default:
			buckets.Days90Plus = buckets.Days90Plus.Add(s.Remaining)
		}
	}
	return buckets
}

// DaysBetween returns the whole calendar days from one date to another,
// negative when to precedes from. Times are truncated to dates in UTC first.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
