package domain

import "time"

// FiscalPeriodStatus indicates whether postings are permitted in a period.
type FiscalPeriodStatus string

const (
	PeriodOpen   FiscalPeriodStatus = "OPEN"
	PeriodClosed FiscalPeriodStatus = "CLOSED"
)

// FiscalPeriod is a bounded, non-overlapping date range (inclusive on both
// ends) during which journal entries may be posted. Closing a period freezes
// ledger history for that range.
type FiscalPeriod struct {
	PeriodID  string             `json:"periodID"` // Primary key (UUID)
	Name      string             `json:"name"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    FiscalPeriodStatus `json:"status"`
	ClosedAt  *time.Time         `json:"closedAt,omitempty"`
	ClosedBy  string             `json:"closedBy,omitempty"`
	AuditFields
}

// Contains reports whether date falls within the period's inclusive range.
func (p FiscalPeriod) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}
