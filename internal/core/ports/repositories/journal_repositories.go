package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// EntryReader defines read operations for journal entry data
type EntryReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines belonging to an entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// ListEntries retrieves a paginated list of entries, optionally filtered by
	// status, using token-based pagination. It returns the entries and a token
	// for the next page.
	ListEntries(ctx context.Context, status *domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// EntryWriter defines write operations for journal entry data
type EntryWriter interface {
	// SaveEntry persists a new entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error

	// ReplaceEntry updates an entry's header fields and replaces its line set
	// wholesale, atomically, provided the persisted status still equals
	// expectedStatus. Returns ErrInvalidState when the status check fails.
	ReplaceEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, expectedStatus domain.EntryStatus) error

	// TransitionEntryStatus moves an entry from one of the expected statuses to
	// the target status in a single conditional update. The status check is
	// performed atomically against the persisted row; a stale transition
	// returns ErrInvalidState rather than overwriting.
	TransitionEntryStatus(ctx context.Context, entryID string, from []domain.EntryStatus, to domain.EntryStatus, actor string, now time.Time) error

	// DeleteEntry hard-deletes an entry and its lines, provided the persisted
	// status still equals expectedStatus.
	DeleteEntry(ctx context.Context, entryID string, expectedStatus domain.EntryStatus) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	EntryReader
	EntryWriter
}
