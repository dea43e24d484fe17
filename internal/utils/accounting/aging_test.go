package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/finbooks/accounting_core/internal/utils/accounting"
)

var agingAsOf = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

func item(number string, daysOverdue int, amount int64) domain.AgingItem {
	return domain.AgingItem{
		DocumentNumber: number,
		DueDate:        agingAsOf.AddDate(0, 0, -daysOverdue),
		Amount:         decimal.NewFromInt(amount),
	}
}

func TestDaysOverdue(t *testing.T) {
	assert.Equal(t, 0, accounting.DaysOverdue(agingAsOf, agingAsOf))
	assert.Equal(t, 45, accounting.DaysOverdue(agingAsOf.AddDate(0, 0, -45), agingAsOf))
	assert.Equal(t, -10, accounting.DaysOverdue(agingAsOf.AddDate(0, 0, 10), agingAsOf))

	// Intra-day timestamps do not change the whole-day count.
	dueMorning := time.Date(2026, 6, 29, 8, 30, 0, 0, time.UTC)
	asOfEvening := time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, accounting.DaysOverdue(dueMorning, asOfEvening))
}

func TestBuildAgingReport_BucketEdges(t *testing.T) {
	testCases := []struct {
		daysOverdue int
		wantLabel   string
	}{
		{-5, "Current"},
		{0, "Current"},
		{1, "1-30 Days"},
		{30, "1-30 Days"},
		{31, "31-60 Days"},
		{60, "31-60 Days"},
		{61, "61-90 Days"},
		{90, "61-90 Days"},
		{91, "90+ Days"},
		{400, "90+ Days"},
	}

	for _, tc := range testCases {
		report := accounting.BuildAgingReport(domain.AgingReceivables, agingAsOf,
			[]domain.AgingItem{item("DOC", tc.daysOverdue, 10)})

		placed := ""
		for _, bucket := range report.Buckets {
			if bucket.Count == 1 {
				placed = bucket.Label
			}
		}
		assert.Equal(t, tc.wantLabel, placed, "item %d days overdue", tc.daysOverdue)
	}
}

func TestBuildAgingReport_TotalsMatchBuckets(t *testing.T) {
	items := []domain.AgingItem{
		item("INV-001", -10, 100), // not yet due
		item("INV-002", 15, 200),
		item("INV-003", 45, 300),
		item("INV-004", 45, 50), // same bucket as INV-003
		item("INV-005", 120, 400),
	}

	report := accounting.BuildAgingReport(domain.AgingReceivables, agingAsOf, items)

	require.Len(t, report.Buckets, 5)
	assert.Equal(t, domain.AgingReceivables, report.Kind)
	assert.Equal(t, 5, report.TotalCount)
	assert.True(t, report.TotalOutstanding.Equal(decimal.NewFromInt(1050)))

	assert.True(t, report.Buckets[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, report.Buckets[1].Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.Buckets[2].Amount.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 2, report.Buckets[2].Count)
	assert.True(t, report.Buckets[3].Amount.IsZero())
	assert.True(t, report.Buckets[4].Amount.Equal(decimal.NewFromInt(400)))

	bucketSum := decimal.Zero
	for _, bucket := range report.Buckets {
		bucketSum = bucketSum.Add(bucket.Amount)
	}
	assert.True(t, report.TotalOutstanding.Equal(bucketSum))
}

func TestBuildAgingReport_EmptyItems(t *testing.T) {
	report := accounting.BuildAgingReport(domain.AgingPayables, agingAsOf, nil)

	require.Len(t, report.Buckets, 5)
	assert.Equal(t, 0, report.TotalCount)
	assert.True(t, report.TotalOutstanding.IsZero())
	for _, bucket := range report.Buckets {
		assert.Equal(t, 0, bucket.Count)
		assert.NotNil(t, bucket.Lines)
	}
}

func TestBuildAgingReport_DisplayBoundsClamped(t *testing.T) {
	report := accounting.BuildAgingReport(domain.AgingReceivables, agingAsOf, nil)

	assert.Equal(t, 0, report.Buckets[0].MinDays)
	assert.Equal(t, 0, report.Buckets[0].MaxDays)
	assert.Equal(t, 91, report.Buckets[4].MinDays)
	assert.Equal(t, 999, report.Buckets[4].MaxDays)
}

func TestBuildAgingReport_LinesCarryDaysOverdue(t *testing.T) {
	report := accounting.BuildAgingReport(domain.AgingReceivables, agingAsOf,
		[]domain.AgingItem{item("INV-010", 45, 75)})

	require.Len(t, report.Buckets[2].Lines, 1)
	lineOut := report.Buckets[2].Lines[0]
	assert.Equal(t, "INV-010", lineOut.DocumentNumber)
	assert.Equal(t, 45, lineOut.DaysOverdue)
}
