package models

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every valid account type in presentation order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// Account represents a node in the household chart of accounts.
//
// Balance is a stored value, not derived from transaction history; the
// ledger package can recompute balances from postings when callers want
// the derived figure instead.
type Account struct {
	// ID is the unique identifier assigned by the database.
	ID int64

	// Name is the display name of the account.
	Name string

	// Type classifies the account (asset, liability, equity, income, expense).
	// Immutable by convention after creation; not enforced.
	Type AccountType

	// ParentID is the ID of the parent account, or 0 for a top-level account.
	// Hierarchy depth is unbounded and unenforced.
	ParentID int64

	// Balance is the cached account balance. Callers are responsible for
	// keeping it consistent with posted transactions.
	Balance decimal.Decimal

	// Description is free-form text shown alongside the account.
	Description string

	// CreatedAt and UpdatedAt are timestamps in SQLite's
	// "2006-01-02 15:04:05" format.
	CreatedAt string
	UpdatedAt string
}
