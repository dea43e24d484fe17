package accounting

import (
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

type bucketDef struct {
	label string
	min   int
	max   int
}

// Buckets are evaluated in order; the first match wins. Negative
// days-overdue (not yet due) land in Current.
var agingBuckets = []bucketDef{
	{"Current", minDays, 0},
	{"1-30 Days", 1, 30},
	{"31-60 Days", 31, 60},
	{"61-90 Days", 61, 90},
	{"90+ Days", 91, maxDays},
}

const (
	minDays = -1 << 31
	maxDays = 1<<31 - 1
)

// DaysOverdue returns the number of whole days between dueDate and asOf.
// It is negative for items not yet due.
func DaysOverdue(dueDate, asOf time.Time) int {
	due := dueDate.UTC().Truncate(24 * time.Hour)
	at := asOf.UTC().Truncate(24 * time.Hour)
	return int(at.Sub(due).Hours() / 24)
}

// BuildAgingReport buckets outstanding items by days overdue relative to
// asOf. Each item lands in exactly one bucket.
func BuildAgingReport(kind domain.AgingReportKind, asOf time.Time, items []domain.AgingItem) domain.AgingReport {
	report := domain.AgingReport{
		Kind:             kind,
		AsOf:             asOf,
		Buckets:          make([]domain.AgingBucket, 0, len(agingBuckets)),
		TotalOutstanding: decimal.Zero,
	}

	for _, def := range agingBuckets {
		bucket := domain.AgingBucket{
			Label:   def.label,
			MinDays: clampDisplay(def.min),
			MaxDays: clampDisplay(def.max),
			Amount:  decimal.Zero,
			Lines:   []domain.AgingLine{},
		}
		for _, item := range items {
			overdue := DaysOverdue(item.DueDate, asOf)
			if overdue < def.min || overdue > def.max {
				continue
			}
			bucket.Lines = append(bucket.Lines, domain.AgingLine{AgingItem: item, DaysOverdue: overdue})
			bucket.Amount = bucket.Amount.Add(item.Amount)
		}
		bucket.Count = len(bucket.Lines)
		report.Buckets = append(report.Buckets, bucket)
		report.TotalOutstanding = report.TotalOutstanding.Add(bucket.Amount)
		report.TotalCount += bucket.Count
	}

	return report
}

// clampDisplay keeps the open-ended bucket bounds readable in report output.
func clampDisplay(days int) int {
	if days == minDays {
		return 0
	}
	if days == maxDays {
		return 999
	}
	return days
}
