package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

func TestAccountTypeIsDebitNormal(t *testing.T) {
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.Expense.IsDebitNormal())
	assert.False(t, domain.Liability.IsDebitNormal())
	assert.False(t, domain.Equity.IsDebitNormal())
	assert.False(t, domain.Revenue.IsDebitNormal())
}

func TestFiscalPeriodContains(t *testing.T) {
	period := domain.FiscalPeriod{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, period.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), "start date is inclusive")
	assert.True(t, period.Contains(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)), "end date is inclusive")
	assert.True(t, period.Contains(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	// Time-of-day within the end date still counts.
	assert.True(t, period.Contains(time.Date(2026, 3, 31, 18, 30, 0, 0, time.UTC)))
}
