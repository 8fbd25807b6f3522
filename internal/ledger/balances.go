package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
)

// AccountBalance pairs an account with its balance derived from posted
// transactions. The stored Account.Balance column is left untouched; this
// is the recomputed figure.
type AccountBalance struct {
	Account models.Account
	Derived decimal.Decimal
}

// DerivedBalances recomputes every account's balance as a running sum over
// its postings. Asset and expense accounts are debit-normal (debits
// increase the balance); liability, equity and income accounts are
// credit-normal. Postings that reference a deleted account are skipped on
// that side.
func (s *Service) DerivedBalances(ctx context.Context) ([]AccountBalance, error) {
	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	txns, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	sums := make(map[int64]decimal.Decimal, len(accounts))
	normal := make(map[int64]int, len(accounts)) // +1 debit-normal, -1 credit-normal
	for _, a := range accounts {
		sums[a.ID] = decimal.Zero
		if a.Type == models.AccountTypeAsset || a.Type == models.AccountTypeExpense {
			normal[a.ID] = 1
		} else {
			normal[a.ID] = -1
		}
	}

	for _, t := range txns {
		if sign, ok := normal[t.DebitAccountID]; ok {
			sums[t.DebitAccountID] = sums[t.DebitAccountID].Add(t.Amount.Mul(decimal.NewFromInt(int64(sign))))
		}
		if sign, ok := normal[t.CreditAccountID]; ok {
			sums[t.CreditAccountID] = sums[t.CreditAccountID].Sub(t.Amount.Mul(decimal.NewFromInt(int64(sign))))
		}
	}

	balances := make([]AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		balances = append(balances, AccountBalance{Account: a, Derived: sums[a.ID]})
	}
	return balances, nil
}

// MonthSummary totals the ledger activity for one calendar month.
type MonthSummary struct {
	// Month in YYYY-MM form.
	Month string

	// Income is the sum of postings crediting an income account.
	Income decimal.Decimal

	// Expenses is the sum of postings debiting an expense account.
	Expenses decimal.Decimal
}

// Net returns income minus expenses.
func (m MonthSummary) Net() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// MonthlySummary computes income and expense totals for the month given in
// YYYY-MM form, classifying each posting by the type of the account on the
// relevant side.
func (s *Service) MonthlySummary(ctx context.Context, month string) (MonthSummary, error) {
	summary := MonthSummary{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}

	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load accounts: %w", err)
	}
	types := make(map[int64]models.AccountType, len(accounts))
	for _, a := range accounts {
		types[a.ID] = a.Type
	}

	txns, err := s.store.Transactions(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load transactions: %w", err)
	}
	for _, t := range txns {
		if !strings.HasPrefix(t.Date, month+"-") {
			continue
		}
		if types[t.CreditAccountID] == models.AccountTypeIncome {
			summary.Income = summary.Income.Add(t.Amount)
		}
		if types[t.DebitAccountID] == models.AccountTypeExpense {
			summary.Expenses = summary.Expenses.Add(t.Amount)
		}
	}
	return summary, nil
}
