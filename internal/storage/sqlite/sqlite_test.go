package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famledger/famledger/internal/models"
	"github.com/famledger/famledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedDefaultAccounts(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath)
	require.NoError(t, err)

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 15, "expected the default chart of accounts")

	byType := map[models.AccountType]int{}
	for _, a := range accounts {
		byType[a.Type]++
		assert.True(t, a.Balance.IsZero(), "seeded account %q should start at zero", a.Name)
	}
	assert.Equal(t, 3, byType[models.AccountTypeAsset])
	assert.Equal(t, 2, byType[models.AccountTypeLiability])
	assert.Equal(t, 2, byType[models.AccountTypeIncome])
	assert.Equal(t, 8, byType[models.AccountTypeExpense])

	// Reopening must not seed again.
	require.NoError(t, store.Close())
	store, err = New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	accounts, err = store.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 15, "reopen must not re-seed")
}

func TestAccountCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("create then list includes the account", func(t *testing.T) {
		a := &models.Account{
			Name:        "Vacation Fund",
			Type:        models.AccountTypeAsset,
			Description: "Trip savings",
		}
		require.NoError(t, store.CreateAccount(ctx, a))
		assert.NotZero(t, a.ID)
		assert.NotEmpty(t, a.CreatedAt)

		accounts, err := store.Accounts(ctx)
		require.NoError(t, err)

		var found *models.Account
		for i := range accounts {
			if accounts[i].ID == a.ID {
				found = &accounts[i]
			}
		}
		require.NotNil(t, found, "created account missing from listing")
		assert.Equal(t, "Vacation Fund", found.Name)
		assert.Equal(t, models.AccountTypeAsset, found.Type)
		assert.Equal(t, "Trip savings", found.Description)
		assert.True(t, found.Balance.IsZero())
	})

	t.Run("ordering is (type, name)", func(t *testing.T) {
		accounts, err := store.Accounts(ctx)
		require.NoError(t, err)
		for i := 1; i < len(accounts); i++ {
			prev, cur := accounts[i-1], accounts[i]
			if prev.Type == cur.Type {
				assert.LessOrEqual(t, prev.Name, cur.Name,
					"accounts of type %s out of name order", cur.Type)
			}
		}
	})

	t.Run("update overwrites the full field set", func(t *testing.T) {
		a := &models.Account{Name: "Hobby", Type: models.AccountTypeExpense}
		require.NoError(t, store.CreateAccount(ctx, a))

		a.Name = "Hobbies"
		a.Description = "Crafts and games"
		a.Balance = decimal.RequireFromString("12.50")
		require.NoError(t, store.UpdateAccount(ctx, a))

		got, err := store.Account(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hobbies", got.Name)
		assert.Equal(t, "Crafts and games", got.Description)
		assert.True(t, got.Balance.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("delete then lookup returns ErrNotFound", func(t *testing.T) {
		a := &models.Account{Name: "Ephemeral", Type: models.AccountTypeExpense}
		require.NoError(t, store.CreateAccount(ctx, a))
		require.NoError(t, store.DeleteAccount(ctx, a.ID))

		_, err := store.Account(ctx, a.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteAccount(ctx, a.ID), storage.ErrNotFound)
	})

	t.Run("expense accounts ordered by name", func(t *testing.T) {
		accounts, err := store.ExpenseAccounts(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, accounts)
		for i, a := range accounts {
			assert.Equal(t, models.AccountTypeExpense, a.Type)
			if i > 0 {
				assert.LessOrEqual(t, accounts[i-1].Name, a.Name)
			}
		}
	})

	t.Run("first asset account is in storage order", func(t *testing.T) {
		a, err := store.FirstAssetAccount(ctx)
		require.NoError(t, err)
		// Checking Account is the first seeded asset row.
		assert.Equal(t, "Checking Account", a.Name)
	})
}

func TestCustomerLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	c := &models.Customer{
		Name:           "Jane Doe",
		IsFamilyMember: true,
		WeeklyIncome:   decimal.RequireFromString("500"),
	}
	require.NoError(t, store.CreateCustomer(ctx, c))

	customers, err := store.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Jane Doe", customers[0].Name)
	assert.True(t, customers[0].IsFamilyMember)
	assert.True(t, customers[0].MonthlyIncome().Equal(decimal.RequireFromString("2165")),
		"weekly 500 should project to monthly 2165, got %s", customers[0].MonthlyIncome())

	require.NoError(t, store.DeleteCustomer(ctx, c.ID))
	customers, err = store.Customers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomerUpdateAndOrdering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, name := range []string{"Zoe", "Alice", "Mike"} {
		require.NoError(t, store.CreateCustomer(ctx, &models.Customer{Name: name}))
	}
	customers, err := store.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, []string{"Alice", "Mike", "Zoe"},
		[]string{customers[0].Name, customers[1].Name, customers[2].Name})

	alice := customers[0]
	alice.JobTitle = "Engineer"
	alice.WeeklyIncome = decimal.RequireFromString("1000")
	alice.IsFamilyMember = true
	require.NoError(t, store.UpdateCustomer(ctx, &alice))

	customers, err = store.Customers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", customers[0].JobTitle)
	assert.True(t, customers[0].MonthlyIncome().Equal(decimal.RequireFromString("4330")))
}

func TestVendorCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	v := &models.Vendor{Name: "City Power", Email: "billing@citypower.example"}
	require.NoError(t, store.CreateVendor(ctx, v))
	assert.True(t, v.Balance.IsZero())

	v.Phone = "555-0100"
	require.NoError(t, store.UpdateVendor(ctx, v))

	vendors, err := store.Vendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "555-0100", vendors[0].Phone)

	require.NoError(t, store.DeleteVendor(ctx, v.ID))
	assert.ErrorIs(t, store.DeleteVendor(ctx, v.ID), storage.ErrNotFound)
}
