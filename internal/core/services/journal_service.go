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
	"github.com/finbooks/accounting_core/internal/utils/accounting"
)

const entityTypeJournalEntry = "JournalEntry"

// journalService is the ledger engine: the journal entry state machine for
// creation, balance validation, posting, voiding and reversal.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
	periodSvc   portssvc.FiscalPeriodSvcFacade
	auditSvc    portssvc.AuditSvc
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	periodSvc portssvc.FiscalPeriodSvcFacade,
	auditSvc portssvc.AuditSvc,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		auditSvc:    auditSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines materializes domain lines from request lines, assigning line IDs
// and the parent entry reference.
func buildLines(entryID string, reqLines []dto.EntryLineRequest, actor string, now time.Time) ([]domain.JournalEntryLine, error) {
	lines := make([]domain.JournalEntryLine, len(reqLines))
	for i, lr := range reqLines {
		if lr.Debit.IsNegative() || lr.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line amounts must be non-negative for account %s", apperrors.ErrValidation, lr.AccountID)
		}
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lr.AccountID,
			Description: lr.Description,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor,
				LastUpdatedAt: now,
				LastUpdatedBy: actor,
			},
		}
	}
	return lines, nil
}

// resolveAccounts verifies every referenced account exists and is active.
func (s *journalService) resolveAccounts(ctx context.Context, lines []domain.JournalEntryLine) error {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// CreateEntry persists a new entry with status DRAFT (or APPROVED when the
// caller supplies it). No balance check here; drafts may be unbalanced while
// being edited.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actor string) (*domain.JournalEntry, error) {
	status := req.Status
	if status != domain.Draft && status != domain.Approved {
		status = domain.Draft
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := buildLines(entryID, req.Lines, actor, now)
	if err != nil {
		return nil, err
	}
	if err := s.resolveAccounts(ctx, lines); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:         entryID,
		EntryDate:       req.EntryDate,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Status:          status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	entry.Lines = lines
	s.auditSvc.LogCreate(ctx, entityTypeJournalEntry, entryID, entry)

	s.LogInfo(ctx, "Journal entry created", slog.String("entry_id", entryID), slog.String("status", string(status)))
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, params.Status, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// UpdateEntry replaces description/date/reference/lines wholesale. Only DRAFT
// entries may be updated; the status check happens atomically in the
// repository so a concurrent approve/void cannot be overwritten.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error) {
	existing, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.Draft {
		return nil, fmt.Errorf("%w: cannot update entry in status %s", apperrors.ErrInvalidState, existing.Status)
	}

	now := time.Now().UTC()
	lines, err := buildLines(entryID, req.Lines, actor, now)
	if err != nil {
		return nil, err
	}
	if err := s.resolveAccounts(ctx, lines); err != nil {
		return nil, err
	}

	updated := domain.JournalEntry{
		EntryID:         entryID,
		EntryDate:       req.EntryDate,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Status:          domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.journalRepo.ReplaceEntry(ctx, updated, lines, domain.Draft); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	updated.Lines = lines
	s.auditSvc.LogUpdate(ctx, entityTypeJournalEntry, entryID, existing, updated)

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return &updated, nil
}

// ApproveEntry transitions DRAFT -> APPROVED. Balance validation is deferred
// to posting, matching the two-step review-then-commit workflow.
func (s *journalService) ApproveEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	now := time.Now().UTC()
	err := s.journalRepo.TransitionEntryStatus(ctx, entryID, []domain.EntryStatus{domain.Draft}, domain.Approved, actor, now)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, "APPROVE_JOURNAL_ENTRY", entityTypeJournalEntry, entryID, nil)
	s.LogInfo(ctx, "Journal entry approved", slog.String("entry_id", entryID))
	return s.GetEntryByID(ctx, entryID)
}

// PostEntry commits an APPROVED entry to permanent ledger history.
func (s *journalService) PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Approved {
		return nil, fmt.Errorf("%w: entry must be APPROVED before posting, got %s", apperrors.ErrInvalidState, entry.Status)
	}

	open, err := s.periodSvc.IsDateInOpenPeriod(ctx, entry.EntryDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to check fiscal period for posting", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to check fiscal period: %w", err)
	}
	if !open {
		return nil, fmt.Errorf("%w: entry date %s", apperrors.ErrPeriodClosed, entry.EntryDate.Format(time.DateOnly))
	}

	// Lines are frozen once an entry leaves DRAFT, so validating here and
	// transitioning with an atomic status check below is race-free.
	if err := accounting.ValidateEntryBalance(entry.Lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.TransitionEntryStatus(ctx, entryID, []domain.EntryStatus{domain.Approved}, domain.Posted, actor, now); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, "POST_JOURNAL_ENTRY", entityTypeJournalEntry, entryID, nil)
	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID))

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor
	return entry, nil
}

// VoidEntry transitions DRAFT/APPROVED -> VOID. Voiding an already VOID entry
// succeeds without side effects. POSTED entries cannot be voided; they must
// be reversed to preserve the audit trail of real postings.
func (s *journalService) VoidEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status == domain.Void {
		return entry, nil
	}
	if entry.Status == domain.Posted {
		return nil, fmt.Errorf("%w: cannot void a POSTED entry, use reverse instead", apperrors.ErrInvalidState)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.TransitionEntryStatus(ctx, entryID, []domain.EntryStatus{domain.Draft, domain.Approved}, domain.Void, actor, now); err != nil {
		return nil, err
	}

	s.auditSvc.LogAction(ctx, "VOID_JOURNAL_ENTRY", entityTypeJournalEntry, entryID, nil)
	s.LogInfo(ctx, "Journal entry voided", slog.String("entry_id", entryID))

	entry.Status = domain.Void
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor
	return entry, nil
}

// ReverseEntry creates a new DRAFT entry mirroring a POSTED entry with debit
// and credit swapped per line. The reversal is dated today, not backdated:
// corrections are recorded when discovered. It is not auto-posted; callers
// decide when to commit it.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	original, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: only POSTED entries can be reversed, got %s", apperrors.ErrInvalidState, original.Status)
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()

	reversedLines := accounting.ReverseLines(original.Lines)
	for i := range reversedLines {
		reversedLines[i].LineID = uuid.NewString()
		reversedLines[i].EntryID = reversalID
		reversedLines[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		}
	}

	reversal := domain.JournalEntry{
		EntryID:         reversalID,
		EntryDate:       now.Truncate(24 * time.Hour),
		Description:     fmt.Sprintf("Reversal of %s", original.ReferenceNumber),
		ReferenceNumber: "REV-" + original.ReferenceNumber,
		Status:          domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, reversal, reversedLines); err != nil {
		s.LogError(ctx, err, "Failed to save reversal entry", slog.String("original_entry_id", entryID))
		return nil, fmt.Errorf("failed to save reversal entry: %w", err)
	}

	reversal.Lines = reversedLines
	s.auditSvc.LogAction(ctx, "REVERSE_JOURNAL_ENTRY", entityTypeJournalEntry, entryID,
		fmt.Sprintf("Created reversal: %s", reversalID))

	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_entry_id", entryID),
		slog.String("reversal_entry_id", reversalID))
	return &reversal, nil
}

// DeleteEntry hard-deletes a DRAFT entry and its lines.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string, actor string) error {
	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Status != domain.Draft {
		return fmt.Errorf("%w: only DRAFT entries can be deleted, got %s", apperrors.ErrInvalidState, entry.Status)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID, domain.Draft); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		}
		return err
	}

	s.auditSvc.LogDelete(ctx, entityTypeJournalEntry, entryID, entry)
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}
