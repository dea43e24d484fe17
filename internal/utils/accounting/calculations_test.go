package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/accounting_core/internal/apperrors"
	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/finbooks/accounting_core/internal/utils/accounting"
)

func line(debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		AccountID: "acc-1",
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestValidateLine(t *testing.T) {
	testCases := []struct {
		name    string
		line    domain.JournalEntryLine
		wantErr error
	}{
		{"valid debit line", line("100", "0"), nil},
		{"valid credit line", line("0", "100"), nil},
		{"fractional debit line", line("0.01", "0"), nil},
		{"negative debit", line("-5", "0"), apperrors.ErrValidation},
		{"negative credit", line("0", "-5"), apperrors.ErrValidation},
		{"both sides set", line("50", "50"), apperrors.ErrUnbalancedLine},
		{"neither side set", line("0", "0"), apperrors.ErrUnbalancedLine},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := accounting.ValidateLine(tc.line)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateEntryBalance(t *testing.T) {
	t.Run("balanced entry", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			line("100", "0"),
			line("50", "0"),
			line("0", "150"),
		}
		assert.NoError(t, accounting.ValidateEntryBalance(lines))
	})

	t.Run("unbalanced totals", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			line("100", "0"),
			line("0", "99.99"),
		}
		assert.ErrorIs(t, accounting.ValidateEntryBalance(lines), apperrors.ErrUnbalancedEntry)
	})

	t.Run("line error reported before totals", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			line("100", "100"),
			line("0", "0"),
		}
		assert.ErrorIs(t, accounting.ValidateEntryBalance(lines), apperrors.ErrUnbalancedLine)
	})

	t.Run("exact decimal comparison across scales", func(t *testing.T) {
		lines := []domain.JournalEntryLine{
			line("0.10", "0"),
			line("0.20", "0"),
			line("0", "0.3"),
		}
		assert.NoError(t, accounting.ValidateEntryBalance(lines))
	})
}

func TestEntryTotals(t *testing.T) {
	lines := []domain.JournalEntryLine{
		line("100", "0"),
		line("25.50", "0"),
		line("0", "125.50"),
	}

	debit, credit := accounting.EntryTotals(lines)
	assert.True(t, debit.Equal(decimal.RequireFromString("125.50")))
	assert.True(t, credit.Equal(decimal.RequireFromString("125.50")))
}

func TestReverseLines(t *testing.T) {
	original := []domain.JournalEntryLine{
		{LineID: "l1", EntryID: "e1", AccountID: "cash", Description: "receipt", Debit: decimal.NewFromInt(300)},
		{LineID: "l2", EntryID: "e1", AccountID: "sales", Credit: decimal.NewFromInt(300)},
	}

	reversed := accounting.ReverseLines(original)
	require.Len(t, reversed, 2)

	assert.Equal(t, "cash", reversed[0].AccountID)
	assert.True(t, reversed[0].Debit.IsZero())
	assert.True(t, reversed[0].Credit.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "receipt", reversed[0].Description)

	assert.Equal(t, "sales", reversed[1].AccountID)
	assert.True(t, reversed[1].Debit.Equal(decimal.NewFromInt(300)))
	assert.True(t, reversed[1].Credit.IsZero())

	// Identifiers are left for the caller to assign.
	assert.Empty(t, reversed[0].LineID)
	assert.Empty(t, reversed[0].EntryID)

	// A reversed balanced entry is still balanced.
	assert.NoError(t, accounting.ValidateEntryBalance(reversed))
}
