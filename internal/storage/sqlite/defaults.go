package sqlite

import "github.com/famledger/famledger/internal/models"

// defaultAccounts returns the chart of accounts seeded on first run.
func defaultAccounts() []models.Account {
	return []models.Account{
		// Assets
		{Name: "Checking Account", Type: models.AccountTypeAsset, Description: "Primary family checking account"},
		{Name: "Savings Account", Type: models.AccountTypeAsset, Description: "Family emergency fund and savings"},
		{Name: "Cash", Type: models.AccountTypeAsset, Description: "Cash on hand"},

		// Liabilities
		{Name: "Credit Card", Type: models.AccountTypeLiability, Description: "Family credit card debt"},
		{Name: "Mortgage", Type: models.AccountTypeLiability, Description: "Home mortgage loan"},

		// Income
		{Name: "Salary", Type: models.AccountTypeIncome, Description: "Primary family income"},
		{Name: "Interest Income", Type: models.AccountTypeIncome, Description: "Interest from savings and investments"},

		// Expenses
		{Name: "Groceries", Type: models.AccountTypeExpense, Description: "Food and household items"},
		{Name: "Utilities", Type: models.AccountTypeExpense, Description: "Electricity, water, gas, internet"},
		{Name: "Gas & Transportation", Type: models.AccountTypeExpense, Description: "Vehicle fuel and transportation costs"},
		{Name: "Dining Out", Type: models.AccountTypeExpense, Description: "Restaurants and takeout"},
		{Name: "Entertainment", Type: models.AccountTypeExpense, Description: "Movies, games, family activities"},
		{Name: "Healthcare", Type: models.AccountTypeExpense, Description: "Medical expenses and insurance"},
		{Name: "Insurance", Type: models.AccountTypeExpense, Description: "Auto, home, and life insurance"},
		{Name: "Shopping", Type: models.AccountTypeExpense, Description: "Clothing, household goods, misc purchases"},
	}
}
