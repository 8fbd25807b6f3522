package models

import "github.com/shopspring/decimal"

// Vendor represents a party the household pays.
type Vendor struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Zip     string

	// Balance is positive when owed to the vendor, negative when the
	// vendor owes the household.
	Balance decimal.Decimal

	CreatedAt string
	UpdatedAt string
}
