// Package storage provides abstractions for persistent ledger data.
package storage

import (
	"context"
	"errors"

	"github.com/famledger/famledger/internal/models"
)

// ErrNotFound is returned when a lookup matches no rows. It lets callers
// tell "no such record" apart from a real query failure.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations over the four ledger entities.
// This abstraction allows swapping storage backends without changing the
// ledger or command layers.
type Store interface {
	// Accounts returns all accounts, ordered by (type, name).
	Accounts(ctx context.Context) ([]models.Account, error)
	Account(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, a *models.Account) error
	// UpdateAccount overwrites the full mutable field set (name, type,
	// description, balance). Callers doing partial updates must merge
	// with a previously fetched record first.
	UpdateAccount(ctx context.Context, a *models.Account) error
	// DeleteAccount is unconditional: it does not check whether any
	// transaction still references the account.
	DeleteAccount(ctx context.Context, id int64) error

	// ExpenseAccounts returns accounts with type 'expense', ordered by name.
	ExpenseAccounts(ctx context.Context) ([]models.Account, error)
	// FirstAssetAccount returns an asset account in storage order. It is
	// the implicit credit side when posting a new expense.
	FirstAssetAccount(ctx context.Context) (*models.Account, error)

	// Customers returns all customers, ordered by name.
	Customers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	// Vendors returns all vendors, ordered by name.
	Vendors(ctx context.Context) ([]models.Vendor, error)
	CreateVendor(ctx context.Context, v *models.Vendor) error
	UpdateVendor(ctx context.Context, v *models.Vendor) error
	DeleteVendor(ctx context.Context, id int64) error

	// Transactions returns all transactions, ordered by
	// (date desc, created_at desc).
	Transactions(ctx context.Context) ([]models.Transaction, error)
	// ExpenseTransactions returns transactions with type 'expense' joined
	// to the debit account's name, same ordering as Transactions.
	ExpenseTransactions(ctx context.Context) ([]models.ExpenseTransaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	// Close releases any resources held by the store.
	Close() error
}
