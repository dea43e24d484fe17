package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingReportKind distinguishes receivables aging (unpaid invoices) from
// payables aging (approved-not-paid expenses).
type AgingReportKind string

const (
	AgingReceivables AgingReportKind = "RECEIVABLES"
	AgingPayables    AgingReportKind = "PAYABLES"
)

// AgingItem is an outstanding source document supplied by the external
// invoice/expense services. It is not derived from ledger data.
type AgingItem struct {
	ContactID      string          `json:"contactID"`
	ContactName    string          `json:"contactName"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentDate   time.Time       `json:"documentDate"`
	DueDate        time.Time       `json:"dueDate"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
}

// AgingLine is an item placed in a bucket, annotated with how overdue it is.
type AgingLine struct {
	AgingItem
	DaysOverdue int `json:"daysOverdue"`
}

// AgingBucket aggregates the items whose days-overdue fall within
// [MinDays, MaxDays].
type AgingBucket struct {
	Label   string          `json:"label"`
	MinDays int             `json:"minDays"`
	MaxDays int             `json:"maxDays"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int             `json:"count"`
	Lines   []AgingLine     `json:"lines"`
}

// AgingReport buckets outstanding items by days overdue relative to AsOf.
// Every input item lands in exactly one bucket, so TotalOutstanding and
// TotalCount always equal the sums across buckets.
type AgingReport struct {
	Kind             AgingReportKind `json:"kind"`
	AsOf             time.Time       `json:"asOf"`
	Buckets          []AgingBucket   `json:"buckets"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalCount       int             `json:"totalCount"`
}
