package models

import "github.com/shopspring/decimal"

// weeksPerMonth is the average number of weeks in a month, used to project
// a weekly income onto a monthly figure.
var weeksPerMonth = decimal.RequireFromString("4.33")

// Customer represents a family member or other party that pays into the
// household. Family members carry income details for the dashboard.
type Customer struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Zip     string

	// Balance is positive when the customer owes the household.
	Balance decimal.Decimal

	// WeeklyIncome is the customer's gross weekly income. Zero when unknown;
	// negative values are rejected at the entry point, not here.
	WeeklyIncome decimal.Decimal

	JobTitle       string
	IsFamilyMember bool

	CreatedAt string
	UpdatedAt string
}

// MonthlyIncome projects the weekly income onto a month (weekly × 4.33).
// It is always computed, never stored.
func (c *Customer) MonthlyIncome() decimal.Decimal {
	return c.WeeklyIncome.Mul(weeksPerMonth)
}
