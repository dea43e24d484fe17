package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
)

const periodColumns = `period_id, name, start_date, end_date, status, closed_at, closed_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

// newPgxFiscalPeriodRepository creates a new repository for fiscal period data.
func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) portsrepo.FiscalPeriodRepository {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodRepository = (*PgxFiscalPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (*domain.FiscalPeriod, error) {
	var period domain.FiscalPeriod
	var closedAt sql.NullTime
	var closedBy sql.NullString

	err := row.Scan(
		&period.PeriodID,
		&period.Name,
		&period.StartDate,
		&period.EndDate,
		&period.Status,
		&closedAt,
		&closedBy,
		&period.CreatedAt,
		&period.CreatedBy,
		&period.LastUpdatedAt,
		&period.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if closedAt.Valid {
		t := closedAt.Time
		period.ClosedAt = &t
	}
	if closedBy.Valid {
		period.ClosedBy = closedBy.String
	}
	return &period, nil
}

// SavePeriod inserts a new fiscal period. The exclusion constraint on the
// date range rejects overlapping periods even under concurrent inserts.
func (r *PgxFiscalPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	query := `
		INSERT INTO fiscal_periods (period_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		period.PeriodID,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.Status,
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return fmt.Errorf("%w: %s to %s", apperrors.ErrOverlappingPeriod,
					period.StartDate.Format(time.DateOnly), period.EndDate.Format(time.DateOnly))
			case pgUniqueViolation:
				return fmt.Errorf("%w: fiscal period %s already exists", apperrors.ErrDuplicate, period.Name)
			}
		}
		return fmt.Errorf("failed to save fiscal period %s: %w", period.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a fiscal period by its ID.
func (r *PgxFiscalPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE period_id = $1;`

	period, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period by ID %s: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves all fiscal periods ordered by start date.
func (r *PgxFiscalPeriodRepository) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods ORDER BY start_date;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row: %w", err)
		}
		periods = append(periods, *period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows: %w", err)
	}
	return periods, nil
}

// FindOpenPeriodForDate retrieves the OPEN period containing date. Periods do
// not overlap, so at most one row can match.
func (r *PgxFiscalPeriodRepository) FindOpenPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE status = 'OPEN' AND start_date <= $1 AND end_date >= $1;
	`
	period, err := scanPeriod(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open period for date %s: %w", date.Format(time.DateOnly), err)
	}
	return period, nil
}

// ClosePeriod transitions a period from OPEN to CLOSED with an atomic status
// check, stamping close metadata.
func (r *PgxFiscalPeriodRepository) ClosePeriod(ctx context.Context, periodID string, closedBy string, now time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET status = 'CLOSED', closed_at = $2, closed_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE period_id = $1 AND status = 'OPEN';
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, now, closedBy)
	if err != nil {
		return fmt.Errorf("failed to close fiscal period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		var status domain.FiscalPeriodStatus
		err := r.Pool.QueryRow(ctx, `SELECT status FROM fiscal_periods WHERE period_id = $1;`, periodID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to check status of fiscal period %s: %w", periodID, err)
		}
		return fmt.Errorf("%w: fiscal period %s is already %s", apperrors.ErrInvalidState, periodID, status)
	}
	return nil
}
