package models

import "github.com/shopspring/decimal"

// TransactionType classifies how a posting entered the ledger.
type TransactionType string

const (
	TransactionTypeJournal TransactionType = "journal"
	TransactionTypeInvoice TransactionType = "invoice"
	TransactionTypePayment TransactionType = "payment"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the four known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeJournal, TransactionTypeInvoice,
		TransactionTypePayment, TransactionTypeExpense:
		return true
	}
	return false
}

// Transaction is a double-entry posting: Amount is applied as a debit to
// DebitAccountID and a credit to CreditAccountID.
type Transaction struct {
	ID int64

	// Date is an ISO date string (2006-01-02).
	Date string

	Description string

	DebitAccountID  int64
	CreditAccountID int64

	// Amount is always positive; the debit/credit pairing carries the sign.
	Amount decimal.Decimal

	// Reference is an optional free-form tag (check number, invoice ref).
	Reference string

	Type TransactionType

	CreatedAt string
	UpdatedAt string
}

// ExpenseTransaction is a Transaction joined to the name of its debit
// account, as returned by the expense listing query.
type ExpenseTransaction struct {
	Transaction

	// AccountName is the debit account's name, or empty if the account
	// has been deleted out from under the transaction.
	AccountName string
}
