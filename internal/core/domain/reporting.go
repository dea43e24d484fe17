package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportLine is a single normalized statement line. Balance carries the
// display-normalized value (always positive-normal for the section it
// appears in).
type ReportLine struct {
	AccountID   string          `json:"accountID,omitempty"`
	AccountCode string          `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetReport is a point-in-time statement of assets, liabilities and
// equity. Equity includes a synthetic Retained Earnings line computed from
// all-time net income; it is not a stored account balance.
type BalanceSheetReport struct {
	AsOf                      time.Time       `json:"asOf"`
	Assets                    []ReportLine    `json:"assets"`
	Liabilities               []ReportLine    `json:"liabilities"`
	Equity                    []ReportLine    `json:"equity"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
}

// IncomeStatementReport covers a date range with revenue and expenses
// display-normalized to positive values.
type IncomeStatementReport struct {
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Revenue       []ReportLine    `json:"revenue"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// TrialBalanceRow is a single account's raw balance classified into a debit
// or credit column by sign.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account with a nonzero balance. In a
// correctly posted ledger TotalDebit always equals TotalCredit.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}
