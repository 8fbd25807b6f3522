package sqlite

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famledger/famledger/internal/models"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expenseAccountID(t *testing.T, store *SQLiteStore, name string) int64 {
	t.Helper()
	accounts, err := store.ExpenseAccounts(context.Background())
	require.NoError(t, err)
	for _, a := range accounts {
		if a.Name == name {
			return a.ID
		}
	}
	t.Fatalf("no expense account named %q", name)
	return 0
}

func TestExpenseTransactionsOrderingAndJoin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	asset, err := store.FirstAssetAccount(ctx)
	require.NoError(t, err)
	groceries := expenseAccountID(t, store, "Groceries")
	dining := expenseAccountID(t, store, "Dining Out")

	// Insert out of date order; two entries share a date.
	entries := []struct {
		date    string
		desc    string
		debitID int64
		amount  string
	}{
		{"2025-03-01", "weekly shop", groceries, "82.10"},
		{"2025-03-15", "pizza night", dining, "41.00"},
		{"2025-03-15", "top-up shop", groceries, "17.35"},
		{"2025-02-20", "birthday dinner", dining, "96.50"},
	}
	for _, e := range entries {
		require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
			Date:            e.date,
			Description:     e.desc,
			DebitAccountID:  e.debitID,
			CreditAccountID: asset.ID,
			Amount:          amt(e.amount),
			Type:            models.TransactionTypeExpense,
		}))
	}

	got, err := store.ExpenseTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	// Date descending, most recently created first within a date.
	assert.Equal(t, "top-up shop", got[0].Description)
	assert.Equal(t, "pizza night", got[1].Description)
	assert.Equal(t, "weekly shop", got[2].Description)
	assert.Equal(t, "birthday dinner", got[3].Description)

	assert.Equal(t, "Groceries", got[0].AccountName)
	assert.Equal(t, "Dining Out", got[1].AccountName)
	assert.True(t, got[0].Amount.Equal(amt("17.35")))
}

func TestNonExpenseTransactionsExcluded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	asset, err := store.FirstAssetAccount(ctx)
	require.NoError(t, err)
	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	var salary int64
	for _, a := range accounts {
		if a.Name == "Salary" {
			salary = a.ID
		}
	}
	require.NotZero(t, salary)

	require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
		Date:            "2025-04-01",
		Description:     "paycheck",
		DebitAccountID:  asset.ID,
		CreditAccountID: salary,
		Amount:          amt("2500"),
		Type:            models.TransactionTypeJournal,
	}))

	expenses, err := store.ExpenseTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	all, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteReferencedAccountLeavesTransactionsIntact(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	asset, err := store.FirstAssetAccount(ctx)
	require.NoError(t, err)
	groceries := expenseAccountID(t, store, "Groceries")
	dining := expenseAccountID(t, store, "Dining Out")

	for _, e := range []struct {
		debitID int64
		desc    string
	}{
		{groceries, "doomed account entry"},
		{dining, "unrelated entry"},
	} {
		require.NoError(t, store.CreateTransaction(ctx, &models.Transaction{
			Date:            "2025-05-05",
			Description:     e.desc,
			DebitAccountID:  e.debitID,
			CreditAccountID: asset.ID,
			Amount:          amt("10"),
			Type:            models.TransactionTypeExpense,
		}))
	}

	// Deleting the debit account succeeds and leaves a dangling reference;
	// unrelated rows must survive untouched.
	require.NoError(t, store.DeleteAccount(ctx, groceries))

	got, err := store.ExpenseTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byDesc := map[string]models.ExpenseTransaction{}
	for _, e := range got {
		byDesc[e.Description] = e
	}
	assert.Equal(t, "", byDesc["doomed account entry"].AccountName,
		"dangling reference should surface an empty account name")
	assert.Equal(t, "Dining Out", byDesc["unrelated entry"].AccountName)
	assert.Equal(t, groceries, byDesc["doomed account entry"].DebitAccountID)
}

func TestTransactionUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	asset, err := store.FirstAssetAccount(ctx)
	require.NoError(t, err)
	groceries := expenseAccountID(t, store, "Groceries")
	dining := expenseAccountID(t, store, "Dining Out")

	tx := &models.Transaction{
		Date:            "2025-06-10",
		Description:     "takeout",
		DebitAccountID:  groceries,
		CreditAccountID: asset.ID,
		Amount:          amt("25.00"),
		Type:            models.TransactionTypeExpense,
	}
	require.NoError(t, store.CreateTransaction(ctx, tx))

	tx.Description = "takeout (corrected)"
	tx.DebitAccountID = dining
	tx.Amount = amt("27.50")
	require.NoError(t, store.UpdateTransaction(ctx, tx))

	got, err := store.ExpenseTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "takeout (corrected)", got[0].Description)
	assert.Equal(t, "Dining Out", got[0].AccountName)
	assert.True(t, got[0].Amount.Equal(amt("27.50")))

	require.NoError(t, store.DeleteTransaction(ctx, tx.ID))
	all, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
