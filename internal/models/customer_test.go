package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyIncome(t *testing.T) {
	tests := []struct {
		name   string
		weekly string
		want   string
	}{
		{"thousand", "1000", "4330"},
		{"five hundred", "500", "2165"},
		{"zero", "0", "0"},
		{"cents survive", "123.45", "534.5385"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Customer{WeeklyIncome: decimal.RequireFromString(tt.weekly)}
			want := decimal.RequireFromString(tt.want)
			assert.True(t, c.MonthlyIncome().Equal(want),
				"got %s, want %s", c.MonthlyIncome(), want)
		})
	}
}

func TestAccountTypeValid(t *testing.T) {
	for _, at := range AccountTypes {
		assert.True(t, at.Valid(), "%s should be valid", at)
	}
	assert.False(t, AccountType("revenue").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestTransactionTypeValid(t *testing.T) {
	for _, tt := range []TransactionType{
		TransactionTypeJournal, TransactionTypeInvoice,
		TransactionTypePayment, TransactionTypeExpense,
	} {
		assert.True(t, tt.Valid())
	}
	assert.False(t, TransactionType("transfer").Valid())
}
