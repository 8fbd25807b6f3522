package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famledger/famledger/internal/kvstore"
)

func TestLoadSettingsDefaults(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	s := LoadSettings(kv)
	assert.Equal(t, "USD", s.Currency)
	assert.Equal(t, "monthly", s.BudgetPeriod)
	assert.True(t, s.MonthlyBudget.Equal(decimal.NewFromInt(5000)))
	assert.True(t, s.ExpenseAlerts)
	assert.False(t, s.DarkMode)
}

func TestSettingsRoundTrip(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	s := DefaultSettings()
	s.DarkMode = true
	s.Currency = "EUR"
	s.MonthlyBudget = decimal.RequireFromString("3200.50")
	require.NoError(t, SaveSettings(kv, s))

	got := LoadSettings(kv)
	assert.True(t, got.DarkMode)
	assert.Equal(t, "EUR", got.Currency)
	assert.True(t, got.MonthlyBudget.Equal(decimal.RequireFromString("3200.50")))
}

func TestLoadSettingsMergesOverDefaults(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	// A partial blob (e.g. written by an older version) keeps defaults
	// for missing fields; unknown keys are dropped.
	require.NoError(t, kv.Set("famledger-settings",
		[]byte(`{"darkMode":true,"legacyKey":"ignored"}`)))

	got := LoadSettings(kv)
	assert.True(t, got.DarkMode)
	assert.Equal(t, "USD", got.Currency, "missing fields fall back to defaults")
	assert.Equal(t, 4, got.FamilyMembers)
}

func TestLoadSettingsCorruptBlob(t *testing.T) {
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, kv.Set("famledger-settings", []byte("{broken")))

	got := LoadSettings(kv)
	assert.Equal(t, DefaultSettings().Currency, got.Currency)
}
