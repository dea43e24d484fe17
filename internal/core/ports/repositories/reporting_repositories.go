package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportingRepository aggregates balances from posted journal lines.
// Both modes compute group-by-account sums directly from line data rather
// than a maintained running balance, so backdated and reversing entries sum
// correctly regardless of creation order. Only POSTED entries contribute.
type ReportingRepository interface {
	// BalancesAsOf returns, per account, sum(debit) - sum(credit) across all
	// posted lines with entry date <= asOf (debit-normal raw balances).
	BalancesAsOf(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error)

	// BalancesForPeriod returns, per account, sum(credit) - sum(debit) across
	// posted lines with start <= entry date <= end (credit-normal, so revenue
	// reads positive).
	BalancesForPeriod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error)
}
