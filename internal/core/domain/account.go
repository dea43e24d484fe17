package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether the account type's natural positive balance
// direction is debit. Asset and expense accounts are debit-normal; liability,
// equity and revenue accounts are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// AccountSubtype is a finer classification of an account within its type,
// used by source-document services to locate designated control accounts.
type AccountSubtype string

const (
	// Assets
	SubtypeCash               AccountSubtype = "CASH"
	SubtypeBank               AccountSubtype = "BANK"
	SubtypeCurrentAsset       AccountSubtype = "CURRENT_ASSET"
	SubtypeFixedAsset         AccountSubtype = "FIXED_ASSET"
	SubtypeInventory          AccountSubtype = "INVENTORY"
	SubtypeAccountsReceivable AccountSubtype = "ACCOUNTS_RECEIVABLE"

	// Liabilities
	SubtypeCurrentLiability  AccountSubtype = "CURRENT_LIABILITY"
	SubtypeLongTermLiability AccountSubtype = "LONG_TERM_LIABILITY"
	SubtypeAccountsPayable   AccountSubtype = "ACCOUNTS_PAYABLE"
	SubtypeCreditCard        AccountSubtype = "CREDIT_CARD"
	SubtypeSalesTaxPayable   AccountSubtype = "SALES_TAX_PAYABLE"

	// Equity
	SubtypeEquity           AccountSubtype = "EQUITY"
	SubtypeRetainedEarnings AccountSubtype = "RETAINED_EARNINGS"

	// Revenue
	SubtypeIncome      AccountSubtype = "INCOME"
	SubtypeOtherIncome AccountSubtype = "OTHER_INCOME"

	// Expenses
	SubtypeOperatingExpense AccountSubtype = "OPERATING_EXPENSE"
	SubtypeCostOfGoodsSold  AccountSubtype = "COST_OF_GOODS_SOLD"
	SubtypePayrollExpense   AccountSubtype = "PAYROLL_EXPENSE"
	SubtypeOtherExpense     AccountSubtype = "OTHER_EXPENSE"
)

// Account represents a chart-of-accounts record.
// AccountType is treated as immutable once posted lines reference the account;
// reporting relies on it for sign normalization.
type Account struct {
	AccountID    string         `json:"accountID"` // Primary key (UUID)
	Code         string         `json:"code"`      // Unique, user-facing account code
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	AccountType  AccountType    `json:"accountType"`
	Subtype      AccountSubtype `json:"subtype"`
	CurrencyCode string         `json:"currencyCode"`
	IsActive     bool           `json:"isActive"`
	AuditFields
}
