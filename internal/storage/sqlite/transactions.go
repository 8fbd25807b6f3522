package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
)

// Transactions returns all transactions ordered by date descending, with
// creation time descending as the tie-break so same-day entries stay
// most-recent-first.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// ExpenseTransactions returns transactions with type 'expense' joined to
// the name of the debit account. A transaction whose debit account has
// been deleted still appears, with an empty account name.
func (s *SQLiteStore) ExpenseTransactions(ctx context.Context) ([]models.ExpenseTransaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.date, t.description, t.debit_account_id, t.credit_account_id,
			t.amount, t.reference, t.type, t.created_at, t.updated_at, a.name
		FROM transactions t
		LEFT JOIN accounts a ON t.debit_account_id = a.id
		WHERE t.type = 'expense'
		ORDER BY t.date DESC, t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.ExpenseTransaction
	for rows.Next() {
		var (
			e           models.ExpenseTransaction
			typ         string
			amount      string
			accountName sql.NullString
		)
		err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.DebitAccountID,
			&e.CreditAccountID, &amount, &e.Reference, &typ,
			&e.CreatedAt, &e.UpdatedAt, &accountName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense transaction: %w", err)
		}
		e.Type = models.TransactionType(typ)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", amount, err)
		}
		e.AccountName = accountName.String
		txns = append(txns, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction inserts a new posting; the ID and timestamps are
// populated on the passed model. Ledger validity (distinct accounts,
// positive amount) is the caller's responsibility, enforced by the
// ledger package.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (description, amount, date, debit_account_id,
			credit_account_id, reference, type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Description, t.Amount.String(), t.Date, t.DebitAccountID,
		t.CreditAccountID, t.Reference, string(t.Type),
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get transaction id: %w", err)
	}
	t.ID = id
	err = s.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM transactions WHERE id = ?", id,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to reload transaction timestamps: %w", err)
	}
	return nil
}

// UpdateTransaction overwrites the mutable fields of a posting. The credit
// account and type are fixed at creation time.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET description = ?, amount = ?, date = ?, debit_account_id = ?,
			reference = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		t.Description, t.Amount.String(), t.Date, t.DebitAccountID,
		t.Reference, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireRow(res, "transaction", t.ID)
}

// DeleteTransaction removes a posting. Account balances are not adjusted.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireRow(res, "transaction", id)
}

const transactionColumns = "id, date, description, debit_account_id, " +
	"credit_account_id, amount, reference, type, created_at, updated_at"

func scanTransaction(row scanner) (*models.Transaction, error) {
	var (
		t      models.Transaction
		typ    string
		amount string
	)
	err := row.Scan(&t.ID, &t.Date, &t.Description, &t.DebitAccountID,
		&t.CreditAccountID, &amount, &t.Reference, &typ,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = models.TransactionType(typ)
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("bad amount %q: %w", amount, err)
	}
	return &t, nil
}
