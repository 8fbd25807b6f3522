package config

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/kvstore"
)

// settingsKey is the key-value store key for the settings blob. Logout
// never clears it.
const settingsKey = "famledger-settings"

// Settings is the user-facing application settings blob. It is a closed
// struct rather than an open string map: unknown keys in a stored blob are
// dropped on load, and missing keys fall back to defaults.
type Settings struct {
	// Appearance
	DarkMode    bool `json:"darkMode"`
	CompactView bool `json:"compactView"`

	// Notifications
	ExpenseAlerts      bool `json:"expenseAlerts"`
	BillReminders      bool `json:"billReminders"`
	BudgetWarnings     bool `json:"budgetWarnings"`
	EmailNotifications bool `json:"emailNotifications"`

	// Financial
	Currency      string          `json:"currency"`
	BudgetPeriod  string          `json:"budgetPeriod"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`

	// Privacy
	AutoBackup     bool `json:"autoBackup"`
	DataEncryption bool `json:"dataEncryption"`

	// Family
	FamilyMembers int  `json:"familyMembers"`
	SharedAccess  bool `json:"sharedAccess"`
}

// DefaultSettings returns the settings used before the user changes
// anything.
func DefaultSettings() Settings {
	return Settings{
		ExpenseAlerts:  true,
		BillReminders:  true,
		BudgetWarnings: true,
		Currency:       "USD",
		BudgetPeriod:   "monthly",
		MonthlyBudget:  decimal.NewFromInt(5000),
		AutoBackup:     true,
		DataEncryption: true,
		FamilyMembers:  4,
	}
}

// LoadSettings reads the settings blob, merging stored values over
// defaults. A missing or unreadable blob yields the defaults.
func LoadSettings(kv *kvstore.Store) Settings {
	settings := DefaultSettings()

	data, err := kv.Get(settingsKey)
	if err != nil {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings()
	}
	return settings
}

// SaveSettings persists the settings blob.
func SaveSettings(kv *kvstore.Store, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := kv.Set(settingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
