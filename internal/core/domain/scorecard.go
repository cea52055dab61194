package domain

import "time"

// PaymentClassification buckets a customer by payment behaviour.
type PaymentClassification string

const (
	ClassStar     PaymentClassification = "STAR"
	ClassRegular  PaymentClassification = "REGULAR"
	ClassRisky    PaymentClassification = "RISKY"
	ClassCritical PaymentClassification = "CRITICAL"
)

// Scorecard summarizes a customer's payment behaviour as of a date.
// Receipts are settled against invoices FIFO; an invoice is on time when the
// receipt that completes it lands on or before the due date.
type Scorecard struct {
	CustomerID     string                `json:"customerID"`
	CustomerName   string                `json:"customerName"`
	AsOf           time.Time             `json:"asOf"`
	InvoiceCount   int                   `json:"invoiceCount"`
	OnTimeCount    int                   `json:"onTimeCount"`
	LateCount      int                   `json:"lateCount"`
	PendingCount   int                   `json:"pendingCount"` // Unsettled and not yet due
	OnTimeRate     float64               `json:"onTimeRate"`   // 1.0 when nothing has come due
	AvgDelayDays   float64               `json:"avgDelayDays"` // Mean over late invoices only
	PaymentScore   int                   `json:"paymentScore"` // 0..100
	Classification PaymentClassification `json:"classification"`
}
