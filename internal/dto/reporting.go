package dto

import (
	"time"

	"github.com/recovhq/recov_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Debtors report ---

// AgingBucketsResponse splits an outstanding balance by days overdue.
type AgingBucketsResponse struct {
	Current    decimal.Decimal `json:"current"`
	Days1To30  decimal.Decimal `json:"days1To30"`
	Days31To60 decimal.Decimal `json:"days31To60"`
	Days61To90 decimal.Decimal `json:"days61To90"`
	Days90Plus decimal.Decimal `json:"days90Plus"`
}

// DebtorSummaryResponse is one customer's row in the debtors report.
type DebtorSummaryResponse struct {
	CustomerID      string               `json:"customerID"`
	CustomerName    string               `json:"customerName"`
	Category        string               `json:"category"`
	TotalInvoices   decimal.Decimal      `json:"totalInvoices"`
	TotalReceipts   decimal.Decimal      `json:"totalReceipts"`
	Balance         decimal.Decimal      `json:"balance"`
	InvoiceCount    int                  `json:"invoiceCount"`
	ReceiptCount    int                  `json:"receiptCount"`
	LastInvoiceDate string               `json:"lastInvoiceDate,omitempty"`
	LastPaymentDate string               `json:"lastPaymentDate,omitempty"`
	Aging           AgingBucketsResponse `json:"aging"`
}

// DebtorCategoryGroupResponse holds the debtors of one customer category.
type DebtorCategoryGroupResponse struct {
	Category     string                  `json:"category"`
	Debtors      []DebtorSummaryResponse `json:"debtors"`
	TotalBalance decimal.Decimal         `json:"totalBalance"`
	DebtorCount  int                     `json:"debtorCount"`
}

// DebtorsReportResponse represents the debtors report response.
type DebtorsReportResponse struct {
	AsOf    string                        `json:"asOf"`
	Groups  []DebtorCategoryGroupResponse `json:"groups"`
	Summary struct {
		TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
		TotalReceived decimal.Decimal `json:"totalReceived"`
		TotalBalance  decimal.Decimal `json:"totalBalance"`
		DebtorCount   int             `json:"debtorCount"`
	} `json:"summary"`
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ToDebtorsReportResponse converts a domain debtors report to a DTO response.
func ToDebtorsReportResponse(report *domain.DebtorsReport) DebtorsReportResponse {
	resp := DebtorsReportResponse{
		AsOf:   report.AsOf.Format("2006-01-02"),
		Groups: make([]DebtorCategoryGroupResponse, len(report.Groups)),
	}
	for i, g := range report.Groups {
		group := DebtorCategoryGroupResponse{
			Category:     string(g.Category),
			Debtors:      make([]DebtorSummaryResponse, len(g.Debtors)),
			TotalBalance: g.TotalBalance,
			DebtorCount:  g.DebtorCount,
		}
		for j, d := range g.Debtors {
			group.Debtors[j] = DebtorSummaryResponse{
				CustomerID:      d.CustomerID,
				CustomerName:    d.CustomerName,
				Category:        string(d.Category),
				TotalInvoices:   d.TotalInvoices,
				TotalReceipts:   d.TotalReceipts,
				Balance:         d.Balance,
				InvoiceCount:    d.InvoiceCount,
				ReceiptCount:    d.ReceiptCount,
				LastInvoiceDate: formatDatePtr(d.LastInvoiceDate),
				LastPaymentDate: formatDatePtr(d.LastPaymentDate),
				Aging: AgingBucketsResponse{
					Current:    d.Aging.Current,
					Days1To30:  d.Aging.Days1To30,
					Days31To60: d.Aging.Days31To60,
					Days61To90: d.Aging.Days61To90,
					Days90Plus: d.Aging.Days90Plus,
				},
			}
		}
		resp.Groups[i] = group
	}
	resp.Summary.TotalInvoiced = report.TotalInvoiced
	resp.Summary.TotalReceived = report.TotalReceived
	resp.Summary.TotalBalance = report.TotalBalance
	resp.Summary.DebtorCount = report.DebtorCount
	return resp
}

// --- Ledger statement ---

// LedgerEntryResponse is a single statement line.
type LedgerEntryResponse struct {
	EntryDate      string          `json:"entryDate"`
	EntryType      string          `json:"entryType"`
	SourceID       string          `json:"sourceID"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerStatementResponse represents the customer statement response.
type LedgerStatementResponse struct {
	CustomerID     string                `json:"customerID"`
	CustomerName   string                `json:"customerName"`
	FromDate       string                `json:"fromDate,omitempty"`
	ToDate         string                `json:"toDate,omitempty"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	TotalDebits    decimal.Decimal       `json:"totalDebits"`
	TotalCredits   decimal.Decimal       `json:"totalCredits"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
	ClosingSide    string                `json:"closingSide"`
}

// ToLedgerStatementResponse converts a domain ledger statement to a DTO response.
func ToLedgerStatementResponse(st *domain.LedgerStatement) LedgerStatementResponse {
	resp := LedgerStatementResponse{
		CustomerID:     st.CustomerID,
		CustomerName:   st.CustomerName,
		FromDate:       formatDatePtr(st.FromDate),
		ToDate:         formatDatePtr(st.ToDate),
		OpeningBalance: st.OpeningBalance,
		Entries:        make([]LedgerEntryResponse, len(st.Entries)),
		TotalDebits:    st.TotalDebits,
		TotalCredits:   st.TotalCredits,
		ClosingBalance: st.ClosingBalance,
		ClosingSide:    string(st.ClosingSide),
	}
	for i, e := range st.Entries {
		resp.Entries[i] = LedgerEntryResponse{
			EntryDate:      e.EntryDate.Format("2006-01-02"),
			EntryType:      string(e.EntryType),
			SourceID:       e.SourceID,
			Reference:      e.Reference,
			Description:    e.Description,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	return resp
}

// --- Payment scorecard ---

// ScorecardResponse represents the payment scorecard response.
type ScorecardResponse struct {
	CustomerID     string  `json:"customerID"`
	CustomerName   string  `json:"customerName"`
	AsOf           string  `json:"asOf"`
	InvoiceCount   int     `json:"invoiceCount"`
	OnTimeCount    int     `json:"onTimeCount"`
	LateCount      int     `json:"lateCount"`
	PendingCount   int     `json:"pendingCount"`
	OnTimeRate     float64 `json:"onTimeRate"`
	AvgDelayDays   float64 `json:"avgDelayDays"`
	PaymentScore   int     `json:"paymentScore"`
	Classification string  `json:"classification"`
}

// ToScorecardResponse converts a domain scorecard to a DTO response.
func ToScorecardResponse(sc *domain.Scorecard) ScorecardResponse {
	return ScorecardResponse{
		CustomerID:     sc.CustomerID,
		CustomerName:   sc.CustomerName,
		AsOf:           sc.AsOf.Format("2006-01-02"),
		InvoiceCount:   sc.InvoiceCount,
		OnTimeCount:    sc.OnTimeCount,
		LateCount:      sc.LateCount,
		PendingCount:   sc.PendingCount,
		OnTimeRate:     sc.OnTimeRate,
		AvgDelayDays:   sc.AvgDelayDays,
		PaymentScore:   sc.PaymentScore,
		Classification: string(sc.Classification),
	}
}
