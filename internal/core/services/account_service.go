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
)

const entityTypeAccount = "Account"

// accountService manages the chart of accounts and the designated-account
// mapping.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	auditSvc    portssvc.AuditSvc
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, auditSvc portssvc.AuditSvc) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new chart-of-accounts record.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		AccountType:  req.AccountType,
		Subtype:      req.Subtype,
		CurrencyCode: req.CurrencyCode,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.auditSvc.LogCreate(ctx, entityTypeAccount, account.AccountID, account)
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by account ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates mutable fields of an account. AccountType is not
// updatable through this path.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	old := *account
	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.Subtype != nil {
		account.Subtype = *req.Subtype
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return account, nil
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.auditSvc.LogUpdate(ctx, entityTypeAccount, accountID, old, *account)
	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount flags an account inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actor string) error {
	now := time.Now().UTC()
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}

	s.auditSvc.LogAction(ctx, "DEACTIVATE_ACCOUNT", entityTypeAccount, accountID, nil)
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// DeleteAccount removes an account that no posted line references.
// Referenced accounts must be deactivated instead to preserve report history.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string, actor string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	referenced, err := s.accountRepo.HasPostedLines(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check posted lines for account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check account references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: account %s is referenced by posted lines, deactivate it instead", apperrors.ErrValidation, accountID)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.auditSvc.LogDelete(ctx, entityTypeAccount, accountID, account)
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// SetDesignatedAccount assigns the account designated for a subtype. The
// explicit mapping replaces the ambiguous "first active match" scan: with
// multiple active accounts per subtype it was undefined which one won.
func (s *accountService) SetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype, accountID string, actor string) error {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}
	if account.Subtype != subtype {
		return fmt.Errorf("%w: account %s has subtype %s, not %s", apperrors.ErrValidation, accountID, account.Subtype, subtype)
	}

	now := time.Now().UTC()
	if err := s.accountRepo.SetDesignatedAccount(ctx, subtype, accountID, actor, now); err != nil {
		s.LogError(ctx, err, "Failed to set designated account", slog.String("subtype", string(subtype)))
		return fmt.Errorf("failed to set designated account: %w", err)
	}

	s.auditSvc.LogAction(ctx, "SET_DESIGNATED_ACCOUNT", entityTypeAccount, accountID, string(subtype))
	s.LogInfo(ctx, "Designated account set", slog.String("subtype", string(subtype)), slog.String("account_id", accountID))
	return nil
}

// GetDesignatedAccount resolves the configured account for a subtype.
func (s *accountService) GetDesignatedAccount(ctx context.Context, subtype domain.AccountSubtype) (*domain.Account, error) {
	account, err := s.accountRepo.FindDesignatedAccount(ctx, subtype)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find designated account", slog.String("subtype", string(subtype)))
		}
		return nil, err
	}
	return account, nil
}
