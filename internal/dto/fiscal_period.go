package dto

import (
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// CreatePeriodRequest defines the payload for creating a fiscal period.
// Dates are inclusive on both ends.
type CreatePeriodRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// PeriodResponse defines the data returned for a fiscal period.
type PeriodResponse struct {
	PeriodID  string                    `json:"periodID"`
	Name      string                    `json:"name"`
	StartDate time.Time                 `json:"startDate"`
	EndDate   time.Time                 `json:"endDate"`
	Status    domain.FiscalPeriodStatus `json:"status"`
	ClosedAt  *time.Time                `json:"closedAt,omitempty"`
	ClosedBy  string                    `json:"closedBy,omitempty"`
}

// ListPeriodsResponse wraps the fiscal period listing.
type ListPeriodsResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// ToPeriodResponse converts a domain.FiscalPeriod to PeriodResponse DTO.
func ToPeriodResponse(p *domain.FiscalPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    p.Status,
		ClosedAt:  p.ClosedAt,
		ClosedBy:  p.ClosedBy,
	}
}
