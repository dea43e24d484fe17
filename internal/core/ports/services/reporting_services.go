package services

import (
	"context"
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc derives financial statements from posted ledger data and
// buckets outstanding documents by age.
type ReportingSvc interface {
	// BalancesAsOf returns per-account cumulative raw balances
	// (sum debit - sum credit) over posted lines dated on or before asOf.
	BalancesAsOf(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error)

	// BalancesForPeriod returns per-account period deltas
	// (sum credit - sum debit) over posted lines within [start, end].
	BalancesForPeriod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error)

	// BalanceSheet builds a point-in-time balance sheet with a synthetic
	// Retained Earnings equity line.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// IncomeStatement builds a period income statement with revenue and
	// expenses display-normalized to positive values.
	IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatementReport, error)

	// TrialBalance lists every nonzero account balance split into debit and
	// credit columns.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)

	// AgingReport buckets the supplied outstanding items by days overdue
	// relative to asOf.
	AgingReport(ctx context.Context, kind domain.AgingReportKind, asOf time.Time, items []domain.AgingItem) (*domain.AgingReport, error)
}
