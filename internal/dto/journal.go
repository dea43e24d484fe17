package dto

import (
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is a single line in an entry create/update payload.
// Amounts are non-negative; the exactly-one-side rule is enforced at posting
// time, so an unbalanced draft may be saved while being edited.
type EntryLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateEntryRequest defines the payload for creating a journal entry.
// Status may be DRAFT or APPROVED; anything else defaults to DRAFT.
type CreateEntryRequest struct {
	EntryDate       time.Time          `json:"entryDate" binding:"required"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"referenceNumber"`
	Status          domain.EntryStatus `json:"status"`
	Lines           []EntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateEntryRequest replaces an entry's header fields and line set wholesale.
type UpdateEntryRequest struct {
	EntryDate       time.Time          `json:"entryDate" binding:"required"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"referenceNumber"`
	Lines           []EntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Status    *domain.EntryStatus `form:"status"`
	Limit     int                 `form:"limit"`
	NextToken *string             `form:"nextToken"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	EntryDate       time.Time           `json:"entryDate"`
	Description     string              `json:"description,omitempty"`
	ReferenceNumber string              `json:"referenceNumber,omitempty"`
	Status          domain.EntryStatus  `json:"status"`
	Lines           []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
}

// ListEntriesResponse wraps a page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryLineResponse converts a domain line to its DTO.
func ToEntryLineResponse(line *domain.JournalEntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Description: line.Description,
		Debit:       line.Debit,
		Credit:      line.Credit,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:         entry.EntryID,
		EntryDate:       entry.EntryDate,
		Description:     entry.Description,
		ReferenceNumber: entry.ReferenceNumber,
		Status:          entry.Status,
		CreatedAt:       entry.CreatedAt,
		CreatedBy:       entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToEntryLineResponse(&entry.Lines[i])
		}
	}
	return resp
}
