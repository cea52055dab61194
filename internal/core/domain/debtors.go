package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBuckets splits a debtor's outstanding balance by days overdue,
// computed from FIFO-unsettled invoice remainders.
type AgingBuckets struct {
	Current    decimal.Decimal `json:"current"` // Not yet due
	Days1To30  decimal.Decimal `json:"days1To30"`
	Days31To60 decimal.Decimal `json:"days31To60"`
	Days61To90 decimal.Decimal `json:"days61To90"`
	Days90Plus decimal.Decimal `json:"days90Plus"`
}

// DebtorSummary is one customer's row in the debtors report.
type DebtorSummary struct {
	CustomerID      string           `json:"customerID"`
	CustomerName    string           `json:"customerName"`
	Category        CustomerCategory `json:"category"`
	TotalInvoices   decimal.Decimal  `json:"totalInvoices"`
	TotalReceipts   decimal.Decimal  `json:"totalReceipts"`
	Balance         decimal.Decimal  `json:"balance"` // TotalInvoices - TotalReceipts, always > 0 here
	InvoiceCount    int              `json:"invoiceCount"`
	ReceiptCount    int              `json:"receiptCount"`
	LastInvoiceDate *time.Time       `json:"lastInvoiceDate,omitempty"`
	LastPaymentDate *time.Time       `json:"lastPaymentDate,omitempty"`
	Aging           AgingBuckets     `json:"aging"`
}

// DebtorCategoryGroup holds the debtors of one customer category.
type DebtorCategoryGroup struct {
	Category     CustomerCategory `json:"category"`
	Debtors      []DebtorSummary  `json:"debtors"`
	TotalBalance decimal.Decimal  `json:"totalBalance"`
	DebtorCount  int              `json:"debtorCount"`
}

// DebtorsReport is the tenant-wide outstanding receivables report.
// Groups appear in fixed category order so identical inputs serialize identically.
type DebtorsReport struct {
	TenantID      string                `json:"tenantID"`
	AsOf          time.Time             `json:"asOf"`
	Groups        []DebtorCategoryGroup `json:"groups"`
	TotalInvoiced decimal.Decimal       `json:"totalInvoiced"`
	TotalReceived decimal.Decimal       `json:"totalReceived"`
	TotalBalance  decimal.Decimal       `json:"totalBalance"`
	DebtorCount   int                   `json:"debtorCount"`
}
