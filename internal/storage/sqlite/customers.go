package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
)

// Customers returns all customers ordered by name.
func (s *SQLiteStore) Customers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var (
			c            models.Customer
			balance      string
			weeklyIncome string
			familyMember int
		)
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.City, &c.State, &c.Zip, &balance, &weeklyIncome,
			&c.JobTitle, &familyMember, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		if c.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("bad balance %q: %w", balance, err)
		}
		if c.WeeklyIncome, err = decimal.NewFromString(weeklyIncome); err != nil {
			return nil, fmt.Errorf("bad weekly income %q: %w", weeklyIncome, err)
		}
		c.IsFamilyMember = familyMember != 0
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// CreateCustomer inserts a new customer. Balance always starts at zero;
// the ID is populated on the passed model.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (name, email, phone, address, city, state, zip,
			weekly_income, job_title, is_family_member)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip,
		c.WeeklyIncome.String(), c.JobTitle, boolToInt(c.IsFamilyMember),
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get customer id: %w", err)
	}
	c.ID = id
	c.Balance = decimal.Zero
	return nil
}

// UpdateCustomer overwrites the full mutable field set of a customer.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE customers
		SET name = ?, email = ?, phone = ?, address = ?, city = ?, state = ?, zip = ?,
			weekly_income = ?, job_title = ?, is_family_member = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip,
		c.WeeklyIncome.String(), c.JobTitle, boolToInt(c.IsFamilyMember), c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return requireRow(res, "customer", c.ID)
}

// DeleteCustomer removes a customer. Deleting a customer has no
// ledger-side effect.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return requireRow(res, "customer", id)
}

const customerColumns = "id, name, email, phone, address, city, state, zip, " +
	"balance, weekly_income, job_title, is_family_member, created_at, updated_at"

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
