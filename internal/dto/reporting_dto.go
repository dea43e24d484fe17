package dto

import (
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingReportRequest carries the outstanding items to bucket. Items are
// sourced by the external invoice/expense services, not derived from ledger
// data.
type AgingReportRequest struct {
	Items []AgingItemRequest `json:"items" binding:"required,dive"`
}

// AgingItemRequest is a single outstanding document.
type AgingItemRequest struct {
	ContactID      string          `json:"contactID" binding:"required"`
	ContactName    string          `json:"contactName"`
	DocumentNumber string          `json:"documentNumber" binding:"required"`
	DocumentDate   time.Time       `json:"documentDate"`
	DueDate        time.Time       `json:"dueDate" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode"`
}

// ToAgingItems converts request items to domain aging items.
func ToAgingItems(items []AgingItemRequest) []domain.AgingItem {
	out := make([]domain.AgingItem, len(items))
	for i, item := range items {
		out[i] = domain.AgingItem{
			ContactID:      item.ContactID,
			ContactName:    item.ContactName,
			DocumentNumber: item.DocumentNumber,
			DocumentDate:   item.DocumentDate,
			DueDate:        item.DueDate,
			Amount:         item.Amount,
			CurrencyCode:   item.CurrencyCode,
		}
	}
	return out
}
