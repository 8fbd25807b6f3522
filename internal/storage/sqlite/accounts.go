package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
	"github.com/famledger/famledger/internal/storage"
)

// Accounts returns all accounts ordered by (type, name).
func (s *SQLiteStore) Accounts(ctx context.Context) ([]models.Account, error) {
	return s.queryAccounts(ctx,
		"SELECT "+accountColumns+" FROM accounts ORDER BY type, name")
}

// ExpenseAccounts returns accounts with type 'expense' ordered by name.
func (s *SQLiteStore) ExpenseAccounts(ctx context.Context) ([]models.Account, error) {
	return s.queryAccounts(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE type = 'expense' ORDER BY name")
}

// Account retrieves a single account by ID.
func (s *SQLiteStore) Account(ctx context.Context, id int64) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// FirstAssetAccount returns an asset account in storage order. Posting an
// expense credits this account as its funding source.
func (s *SQLiteStore) FirstAssetAccount(ctx context.Context) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE type = 'asset' LIMIT 1")
	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no asset account: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first asset account: %w", err)
	}
	return a, nil
}

// CreateAccount inserts a new account. Balance always starts at zero; the
// ID, balance and timestamps are populated on the passed model.
func (s *SQLiteStore) CreateAccount(ctx context.Context, a *models.Account) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts (name, type, parent_id, description) VALUES (?, ?, ?, ?)",
		a.Name, string(a.Type), nullableID(a.ParentID), a.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get account id: %w", err)
	}
	a.ID = id
	a.Balance = decimal.Zero
	return s.refreshAccount(ctx, a)
}

// UpdateAccount overwrites the full mutable field set of an account.
func (s *SQLiteStore) UpdateAccount(ctx context.Context, a *models.Account) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET name = ?, type = ?, description = ?, balance = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		a.Name, string(a.Type), a.Description, a.Balance.String(), a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return requireRow(res, "account", a.ID)
}

// DeleteAccount removes an account unconditionally. Transactions that
// reference the account are left with a dangling foreign key.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return requireRow(res, "account", id)
}

const accountColumns = "id, name, type, parent_id, balance, description, created_at, updated_at"

func (s *SQLiteStore) queryAccounts(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

func scanAccount(row scanner) (*models.Account, error) {
	var (
		a        models.Account
		typ      string
		parentID sql.NullInt64
		balance  string
	)
	err := row.Scan(&a.ID, &a.Name, &typ, &parentID, &balance,
		&a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Type = models.AccountType(typ)
	a.ParentID = parentID.Int64
	a.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("bad balance %q: %w", balance, err)
	}
	return &a, nil
}

// refreshAccount reloads the database-assigned timestamps after an insert.
func (s *SQLiteStore) refreshAccount(ctx context.Context, a *models.Account) error {
	err := s.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM accounts WHERE id = ?", a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to reload account timestamps: %w", err)
	}
	return nil
}
