package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_core/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_core/internal/core/ports/services"
	"github.com/finbooks/accounting_core/internal/dto"
)

const entityTypeFiscalPeriod = "FiscalPeriod"

// fiscalPeriodService gates postings by calendar date.
type fiscalPeriodService struct {
	BaseService
	periodRepo portsrepo.FiscalPeriodRepository
	auditSvc   portssvc.AuditSvc
}

// NewFiscalPeriodService creates a new fiscal period service.
func NewFiscalPeriodService(periodRepo portsrepo.FiscalPeriodRepository, auditSvc portssvc.AuditSvc) portssvc.FiscalPeriodSvcFacade {
	return &fiscalPeriodService{
		periodRepo: periodRepo,
		auditSvc:   auditSvc,
	}
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

// CreatePeriod persists a new OPEN period. The overlap check is also enforced
// by a storage-level exclusion constraint, so two concurrent creates with
// intersecting ranges cannot both succeed.
func (s *fiscalPeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, actor string) (*domain.FiscalPeriod, error) {
	if req.StartDate.After(req.EndDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", apperrors.ErrInvalidRange,
			req.StartDate.Format(time.DateOnly), req.EndDate.Format(time.DateOnly))
	}

	now := time.Now().UTC()
	period := domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		if errors.Is(err, apperrors.ErrOverlappingPeriod) {
			s.LogWarn(ctx, "Rejected overlapping fiscal period",
				slog.String("start", req.StartDate.Format(time.DateOnly)),
				slog.String("end", req.EndDate.Format(time.DateOnly)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save fiscal period")
		return nil, fmt.Errorf("failed to save fiscal period: %w", err)
	}

	s.auditSvc.LogCreate(ctx, entityTypeFiscalPeriod, period.PeriodID, period)
	s.LogInfo(ctx, "Fiscal period created", slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

// ListPeriods retrieves all fiscal periods.
func (s *fiscalPeriodService) ListPeriods(ctx context.Context) ([]domain.FiscalPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal periods")
		return nil, fmt.Errorf("failed to list fiscal periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod transitions OPEN -> CLOSED, stamping close metadata.
// Sub-ledger reconciliation checks before close are a future extension.
func (s *fiscalPeriodService) ClosePeriod(ctx context.Context, periodID string, actor string) (*domain.FiscalPeriod, error) {
	now := time.Now().UTC()
	if err := s.periodRepo.ClosePeriod(ctx, periodID, actor, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to close fiscal period", slog.String("period_id", periodID))
		}
		return nil, err
	}

	s.auditSvc.LogAction(ctx, "CLOSE_FISCAL_PERIOD", entityTypeFiscalPeriod, periodID, nil)
	s.LogInfo(ctx, "Fiscal period closed", slog.String("period_id", periodID))
	return s.periodRepo.FindPeriodByID(ctx, periodID)
}

// IsDateInOpenPeriod reports whether an OPEN period contains date. Periods
// are non-overlapping by construction, so at most one can match.
func (s *fiscalPeriodService) IsDateInOpenPeriod(ctx context.Context, date time.Time) (bool, error) {
	_, err := s.periodRepo.FindOpenPeriodForDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up open period: %w", err)
	}
	return true, nil
}
