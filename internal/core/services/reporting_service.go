package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/utils/accounting"
)

// reportEpoch is the lower bound for all-time aggregations such as the
// synthetic Retained Earnings line.
var reportEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// reportingService derives financial statements from posted ledger data.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// BalancesAsOf returns per-account cumulative raw balances (debit-normal).
func (s *reportingService) BalancesAsOf(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error) {
	balances, err := s.reportingRepo.BalancesAsOf(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate as-of balances", slog.String("asOf", asOf.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to aggregate balances as of %s: %w", asOf.Format(time.DateOnly), err)
	}
	return balances, nil
}

// BalancesForPeriod returns per-account period deltas (credit-normal).
func (s *reportingService) BalancesForPeriod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error) {
	balances, err := s.reportingRepo.BalancesForPeriod(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate period balances",
			slog.String("start", start.Format(time.DateOnly)),
			slog.String("end", end.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to aggregate balances for period: %w", err)
	}
	return balances, nil
}

// buildSection collects display-normalized, nonzero report lines for one
// account type. flipSign converts raw balances to the section's
// positive-normal display convention.
func buildSection(accounts []domain.Account, balances map[string]decimal.Decimal, accountType domain.AccountType, flipSign bool) []domain.ReportLine {
	lines := []domain.ReportLine{}
	for _, acc := range accounts {
		if acc.AccountType != accountType {
			continue
		}
		raw, ok := balances[acc.AccountID]
		if !ok || raw.IsZero() {
			continue
		}
		display := raw
		if flipSign {
			display = raw.Neg()
		}
		lines = append(lines, domain.ReportLine{
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			Balance:     display,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].AccountCode < lines[j].AccountCode })
	return lines
}

func sumLines(lines []domain.ReportLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Balance)
	}
	return total
}

// netIncome computes revenue minus expense over [start, end]. Period
// balances are credit-normal, so summing the raw values across all
// REVENUE and EXPENSE accounts yields net income directly.
func (s *reportingService) netIncome(ctx context.Context, accounts []domain.Account, start, end time.Time) (decimal.Decimal, error) {
	balances, err := s.BalancesForPeriod(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, acc := range accounts {
		if acc.AccountType != domain.Revenue && acc.AccountType != domain.Expense {
			continue
		}
		if bal, ok := balances[acc.AccountID]; ok {
			total = total.Add(bal)
		}
	}
	return total, nil
}

// BalanceSheet builds a point-in-time statement of assets, liabilities and
// equity. As-of balances are debit-normal, so liability and equity sections
// are sign-flipped for display. Retained Earnings is appended to Equity as a
// synthetic line holding all-time net income; it is not a stored balance.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	balances, err := s.BalancesAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	assets := buildSection(accounts, balances, domain.Asset, false)
	liabilities := buildSection(accounts, balances, domain.Liability, true)
	equity := buildSection(accounts, balances, domain.Equity, true)

	retainedEarnings, err := s.netIncome(ctx, accounts, reportEpoch, asOf)
	if err != nil {
		return nil, err
	}
	equity = append(equity, domain.ReportLine{
		AccountName: "Retained Earnings",
		Balance:     retainedEarnings,
	})

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      sumLines(assets),
		TotalLiabilities: sumLines(liabilities),
		TotalEquity:      sumLines(equity),
	}
	report.TotalLiabilitiesAndEquity = report.TotalLiabilities.Add(report.TotalEquity)

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(assets)),
		slog.Int("liability_accounts", len(liabilities)),
		slog.Int("equity_accounts", len(equity)))
	return report, nil
}

// IncomeStatement builds a period statement. Period balances are
// credit-normal, so revenue reads positive as-is and expenses are
// sign-flipped for display.
func (s *reportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatementReport, error) {
	balances, err := s.BalancesForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	revenue := buildSection(accounts, balances, domain.Revenue, false)
	expenses := buildSection(accounts, balances, domain.Expense, true)

	report := &domain.IncomeStatementReport{
		StartDate:     start,
		EndDate:       end,
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  sumLines(revenue),
		TotalExpenses: sumLines(expenses),
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	s.LogInfo(ctx, "Income statement generated",
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.Int("revenue_accounts", len(revenue)),
		slog.Int("expense_accounts", len(expenses)))
	return report, nil
}

// TrialBalance lists every nonzero raw balance, classified into a debit or
// credit column by sign. Equal column totals are the primary
// self-consistency check for the whole engine.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	balances, err := s.BalancesAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := &domain.TrialBalanceReport{
		AsOf:        asOf,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, acc := range accounts {
		raw, ok := balances[acc.AccountID]
		if !ok || raw.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if raw.IsPositive() {
			row.Debit = raw
			report.TotalDebit = report.TotalDebit.Add(raw)
		} else {
			row.Credit = raw.Abs()
			report.TotalCredit = report.TotalCredit.Add(raw.Abs())
		}
		report.Rows = append(report.Rows, row)
	}
	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].AccountCode < report.Rows[j].AccountCode })

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}

// AgingReport buckets the supplied outstanding items by days overdue.
func (s *reportingService) AgingReport(ctx context.Context, kind domain.AgingReportKind, asOf time.Time, items []domain.AgingItem) (*domain.AgingReport, error) {
	report := accounting.BuildAgingReport(kind, asOf, items)

	s.LogInfo(ctx, "Aging report generated",
		slog.String("kind", string(kind)),
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("item_count", report.TotalCount))
	return &report, nil
}
