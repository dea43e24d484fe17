package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// FiscalPeriodRepository defines persistence operations for fiscal periods.
type FiscalPeriodRepository interface {
	// SavePeriod persists a new fiscal period. The storage layer enforces
	// range exclusivity, so two concurrent saves with overlapping ranges
	// cannot both succeed; the loser receives ErrOverlappingPeriod.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) error

	// FindPeriodByID retrieves a fiscal period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves all fiscal periods ordered by start date.
	ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// FindOpenPeriodForDate retrieves the OPEN period containing date, or
	// ErrNotFound when none covers it.
	FindOpenPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error)

	// ClosePeriod transitions a period from OPEN to CLOSED with an atomic
	// status check, stamping the close metadata.
	ClosePeriod(ctx context.Context, periodID string, closedBy string, now time.Time) error
}
