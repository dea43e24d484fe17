package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_core/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by account ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts, optionally restricted to active ones.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)

	// HasPostedLines reports whether any posted journal line references the account.
	HasPostedLines(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount flags an account inactive without removing it.
	DeactivateAccount(ctx context.Context, accountID string, actor string, now time.Time) error

	// DeleteAccount removes an account. Callers must ensure no posted lines reference it.
	DeleteAccount(ctx context.Context, accountID string) error
}

// DesignatedAccountRepository stores the explicit subtype -> account mapping
// used by source-document services to locate control accounts.
type DesignatedAccountRepository interface {
	// SetDesignatedAccount assigns the account designated for a subtype, replacing any prior assignment.
	SetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype, accountID string, actor string, now time.Time) error

	// FindDesignatedAccount retrieves the account designated for a subtype.
	FindDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	DesignatedAccountRepository
}
