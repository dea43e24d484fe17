package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
//
//	DRAFT --(approve)--> APPROVED --(post)--> POSTED
//	DRAFT/APPROVED --(void)--> VOID
//	POSTED --(reverse)--> new DRAFT entry with debit/credit swapped
//
// POSTED and VOID are terminal for direct mutation.
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Approved EntryStatus = "APPROVED"
	Posted   EntryStatus = "POSTED"
	Void     EntryStatus = "VOID"
)

// JournalEntry represents a single balanced financial event composed of
// multiple lines. It exclusively owns its lines; lines hold the parent id
// rather than a live back-pointer.
type JournalEntry struct {
	EntryID         string             `json:"entryID"` // Primary key (UUID)
	EntryDate       time.Time          `json:"entryDate"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"referenceNumber"`
	Status          EntryStatus        `json:"status"`
	Lines           []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine is a single line within a journal entry, affecting one
// account. Debit and Credit are both non-negative; at posting time exactly
// one of them must be strictly positive.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"` // FK -> JournalEntry.EntryID
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	AuditFields
}
