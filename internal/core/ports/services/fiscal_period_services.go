package services

import (
	"context"
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/finbooks/accounting_core/internal/dto"
)

// FiscalPeriodSvcFacade is the fiscal period gate consulted at posting time.
type FiscalPeriodSvcFacade interface {
	// CreatePeriod persists a new OPEN fiscal period after range and overlap
	// validation.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actor string) (*domain.FiscalPeriod, error)

	// ListPeriods retrieves all fiscal periods.
	ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error)

	// ClosePeriod transitions OPEN -> CLOSED, stamping close metadata.
	ClosePeriod(ctx context.Context, periodID string, actor string) (*domain.FiscalPeriod, error)

	// IsDateInOpenPeriod reports whether an OPEN period contains date.
	IsDateInOpenPeriod(ctx context.Context, date time.Time) (bool, error)
}
