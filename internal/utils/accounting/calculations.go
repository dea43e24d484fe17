package accounting

import (
	"fmt"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateLine checks the single-sided invariant for a journal line:
// exactly one of debit/credit must be strictly positive, the other exactly
// zero. Negative amounts are rejected outright.
// This is used by both the ledger engine and request validation to keep the
// posting rule in one place.
func ValidateLine(line domain.JournalEntryLine) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("%w: amounts must be non-negative for account %s", apperrors.ErrValidation, line.AccountID)
	}
	hasDebit := line.Debit.IsPositive()
	hasCredit := line.Credit.IsPositive()
	if hasDebit && hasCredit {
		return fmt.Errorf("%w: account %s has both debit %s and credit %s", apperrors.ErrUnbalancedLine, line.AccountID, line.Debit, line.Credit)
	}
	if !hasDebit && !hasCredit {
		return fmt.Errorf("%w: account %s has neither debit nor credit", apperrors.ErrUnbalancedLine, line.AccountID)
	}
	return nil
}

// ValidateEntryBalance checks that the sum of debits equals the sum of
// credits across all lines, using exact decimal comparison at the entry's
// working scale. Line-level invariants are checked first.
func ValidateEntryBalance(lines []domain.JournalEntryLine) error {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return err
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedEntry, totalDebit, totalCredit)
	}
	return nil
}

// EntryTotals returns the summed debit and credit sides of an entry's lines.
func EntryTotals(lines []domain.JournalEntryLine) (debit, credit decimal.Decimal) {
	debit = decimal.Zero
	credit = decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// ReverseLines produces mirror lines with debit and credit swapped per line,
// preserving the account set. Identifiers and parent references are left
// empty for the caller to assign.
func ReverseLines(lines []domain.JournalEntryLine) []domain.JournalEntryLine {
	reversed := make([]domain.JournalEntryLine, len(lines))
	for i, line := range lines {
		reversed[i] = domain.JournalEntryLine{
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       line.Credit,
			Credit:      line.Debit,
		}
	}
	return reversed
}
