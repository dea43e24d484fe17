package services

import (
	"context"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/finbooks/accounting_core/internal/dto"
)

// EntryReaderSvc defines read operations for journal entry data
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry and its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines the ledger engine's mutating operations.
// Every mutation emits an audit record; audit failures are surfaced to
// operators via error-tier logs but never roll back the ledger mutation.
type EntryWriterSvc interface {
	// CreateEntry persists a new entry with status DRAFT (or APPROVED when the
	// caller says so). No balance check is performed; drafts may be unbalanced
	// while being edited.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actor string) (*domain.JournalEntry, error)

	// UpdateEntry replaces description/date/reference/lines wholesale.
	// Permitted only while DRAFT.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error)

	// ApproveEntry transitions DRAFT -> APPROVED. Balance validation is
	// deferred to posting.
	ApproveEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// PostEntry commits an APPROVED entry: the entry date must fall in an OPEN
	// fiscal period, every line must carry exactly one positive side, and
	// total debits must equal total credits exactly. On success the entry is
	// POSTED and terminal for direct edits.
	PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// VoidEntry transitions DRAFT/APPROVED -> VOID. Idempotent on VOID
	// entries; POSTED entries must be reversed instead.
	VoidEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// ReverseEntry creates a new DRAFT entry dated today mirroring a POSTED
	// entry with debit and credit swapped per line. The reversal is not
	// auto-posted.
	ReverseEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// DeleteEntry hard-deletes a DRAFT entry.
	DeleteEntry(ctx context.Context, entryID string, actor string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
