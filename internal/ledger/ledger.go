// Package ledger defines what a valid double-entry posting looks like and
// provides the entry workflows built on top of the storage layer.
//
// The storage layer itself does not enforce posting validity; every
// transaction-creating path goes through this package instead.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
	"github.com/famledger/famledger/internal/storage"
)

var (
	ErrSameAccount       = errors.New("debit and credit accounts must differ")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrTooManyDecimals   = errors.New("amount has more than 2 decimal places")
	ErrUnknownAccount    = errors.New("unknown account")
	ErrBadDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrBadType           = errors.New("unknown transaction type")
)

// Service validates and records postings.
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// NewService creates a ledger service over the given store.
func NewService(store storage.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Validate checks a posting against the ledger invariants: distinct debit
// and credit accounts, a positive amount with at most two decimal places,
// a well-formed date, a known type, and both accounts existing.
func (s *Service) Validate(ctx context.Context, t *models.Transaction) error {
	if t.DebitAccountID == t.CreditAccountID {
		return ErrSameAccount
	}
	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if t.Amount.Exponent() < -2 {
		return ErrTooManyDecimals
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, t.Date)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrBadType, t.Type)
	}
	for _, id := range []int64{t.DebitAccountID, t.CreditAccountID} {
		if _, err := s.store.Account(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrUnknownAccount, id)
			}
			return fmt.Errorf("failed to check account %d: %w", id, err)
		}
	}
	return nil
}

// Post validates a posting and records it. Account balances are not
// adjusted; see DerivedBalances.
func (s *Service) Post(ctx context.Context, t *models.Transaction) error {
	if err := s.Validate(ctx, t); err != nil {
		return err
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return err
	}
	s.logger.Info("posted transaction",
		"id", t.ID,
		"type", t.Type,
		"amount", t.Amount.StringFixed(2),
		"debit", t.DebitAccountID,
		"credit", t.CreditAccountID,
	)
	return nil
}

// AddExpense records an expense posting: it debits the chosen expense
// account and credits the first asset account as the funding source.
func (s *Service) AddExpense(ctx context.Context, date, description string, expenseAccountID int64, amount decimal.Decimal, reference string) (*models.Transaction, error) {
	funding, err := s.store.FirstAssetAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find funding account: %w", err)
	}

	t := &models.Transaction{
		Date:            date,
		Description:     description,
		DebitAccountID:  expenseAccountID,
		CreditAccountID: funding.ID,
		Amount:          amount,
		Reference:       reference,
		Type:            models.TransactionTypeExpense,
	}
	if err := s.Post(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
