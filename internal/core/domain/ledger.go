package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"  // Invoice raised
	Credit EntryType = "CREDIT" // Receipt collected
)

// BalanceSide is the accounting side of a balance.
type BalanceSide string

const (
	SideDr BalanceSide = "Dr" // Customer owes us (balance >= 0)
	SideCr BalanceSide = "Cr" // We owe the customer
)

// LedgerEntry is a single line in a customer statement: one invoice or one receipt.
type LedgerEntry struct {
	EntryDate      time.Time       `json:"entryDate"`
	CreatedAt      time.Time       `json:"createdAt"` // Tie-break for entries on the same date
	EntryType      EntryType       `json:"entryType"`
	SourceID       string          `json:"sourceID"` // Invoice or receipt ID
	Reference      string          `json:"reference"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // Signed; positive means customer owes
}

// LedgerStatement is a customer statement over an optional date range.
type LedgerStatement struct {
	CustomerID     string          `json:"customerID"`
	CustomerName   string          `json:"customerName"`
	FromDate       *time.Time      `json:"fromDate,omitempty"`
	ToDate         *time.Time      `json:"toDate,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Signed net of everything before FromDate
	Entries        []LedgerEntry   `json:"entries"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	ClosingBalance decimal.Decimal `json:"closingBalance"` // Absolute amount, read with ClosingSide
	ClosingSide    BalanceSide     `json:"closingSide"`
}
