package services

import (
	"context"

	"github.com/finbooks/accounting_core/internal/core/domain"
	"github.com/finbooks/accounting_core/internal/dto"
)

// AccountReaderSvc defines read operations for the account directory
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by account ID.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts, optionally only active ones.
	ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error)

	// GetDesignatedAccount resolves the explicitly configured account for a
	// subtype (e.g. the Accounts Receivable control account).
	GetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for the account directory
type AccountWriterSvc interface {
	// CreateAccount persists a new chart-of-accounts record.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error)

	// UpdateAccount updates mutable fields of an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error)

	// DeactivateAccount flags an account inactive.
	DeactivateAccount(ctx context.Context, accountID string, actor string) error

	// DeleteAccount removes an account that no posted line references;
	// referenced accounts must be deactivated instead.
	DeleteAccount(ctx context.Context, accountID string, actor string) error

	// SetDesignatedAccount assigns the account designated for a subtype.
	SetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype, accountID string, actor string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
