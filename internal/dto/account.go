package dto

import (
	"github.com/finbooks/accounting_core/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a chart-of-accounts record.
type CreateAccountRequest struct {
	Code         string                `json:"code" binding:"required"`
	Name         string                `json:"name" binding:"required"`
	Description  string                `json:"description"`
	AccountType  domain.AccountType    `json:"accountType" binding:"required,accounttype"`
	Subtype      domain.AccountSubtype `json:"subtype" binding:"required"`
	CurrencyCode string                `json:"currencyCode" binding:"required,len=3"`
}

// UpdateAccountRequest defines the payload for updating an account.
// AccountType is deliberately absent: type is immutable once posted lines
// reference the account.
type UpdateAccountRequest struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Subtype     *domain.AccountSubtype `json:"subtype,omitempty"`
	IsActive    *bool                  `json:"isActive,omitempty"`
}

// SetDesignatedAccountRequest assigns the account designated for a subtype.
type SetDesignatedAccountRequest struct {
	AccountID string `json:"accountID" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string                `json:"accountID"`
	Code         string                `json:"code"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	AccountType  domain.AccountType    `json:"accountType"`
	Subtype      domain.AccountSubtype `json:"subtype"`
	CurrencyCode string                `json:"currencyCode"`
	IsActive     bool                  `json:"isActive"`
}

// ListAccountsResponse wraps the account listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		Code:         a.Code,
		Name:         a.Name,
		Description:  a.Description,
		AccountType:  a.AccountType,
		Subtype:      a.Subtype,
		CurrencyCode: a.CurrencyCode,
		IsActive:     a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
