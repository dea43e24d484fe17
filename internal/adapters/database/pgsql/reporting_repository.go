package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
)

// reportingRepository aggregates balances with GROUP BY over posted lines.
// No running balance column exists; summing line data directly keeps
// backdated and reversing entries correct regardless of insertion order.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) queryBalances(ctx context.Context, query string, args ...any) (map[string]decimal.Decimal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying balances: %w", err)
	}
	defer rows.Close()

	balances := map[string]decimal.Decimal{}
	for rows.Next() {
		var accountID string
		var net decimal.Decimal
		if err := rows.Scan(&accountID, &net); err != nil {
			return nil, fmt.Errorf("error scanning balance row: %w", err)
		}
		balances[accountID] = net
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return balances, nil
}

// BalancesAsOf returns per-account sum(debit) - sum(credit) across posted
// lines with entry date <= asOf. Positive values are debit balances.
func (r *reportingRepository) BalancesAsOf(ctx context.Context, asOf time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT l.account_id, SUM(l.debit - l.credit) AS net
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.status = 'POSTED' AND e.entry_date <= $1
		GROUP BY l.account_id;
	`
	return r.queryBalances(ctx, query, asOf)
}

// BalancesForPeriod returns per-account sum(credit) - sum(debit) across
// posted lines dated within [start, end]. Revenue reads positive.
func (r *reportingRepository) BalancesForPeriod(ctx context.Context, start, end time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT l.account_id, SUM(l.credit - l.debit) AS net
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.status = 'POSTED' AND e.entry_date BETWEEN $1 AND $2
		GROUP BY l.account_id;
	`
	return r.queryBalances(ctx, query, start, end)
}
