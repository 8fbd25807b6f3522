package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/famledger/famledger/internal/models"
)

// Vendors returns all vendors ordered by name.
func (s *SQLiteStore) Vendors(ctx context.Context) ([]models.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address, city, state, zip, balance,
			created_at, updated_at
		FROM vendors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		var (
			v       models.Vendor
			balance string
		)
		err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address,
			&v.City, &v.State, &v.Zip, &balance, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		if v.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("bad balance %q: %w", balance, err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}
	return vendors, nil
}

// CreateVendor inserts a new vendor with a zero balance; the ID is
// populated on the passed model.
func (s *SQLiteStore) CreateVendor(ctx context.Context, v *models.Vendor) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (name, email, phone, address, city, state, zip)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.Email, v.Phone, v.Address, v.City, v.State, v.Zip,
	)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get vendor id: %w", err)
	}
	v.ID = id
	v.Balance = decimal.Zero
	return nil
}

// UpdateVendor overwrites the full mutable field set of a vendor.
func (s *SQLiteStore) UpdateVendor(ctx context.Context, v *models.Vendor) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE vendors
		SET name = ?, email = ?, phone = ?, address = ?, city = ?, state = ?, zip = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		v.Name, v.Email, v.Phone, v.Address, v.City, v.State, v.Zip, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	return requireRow(res, "vendor", v.ID)
}

// DeleteVendor removes a vendor. Deleting a vendor has no ledger-side effect.
func (s *SQLiteStore) DeleteVendor(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM vendors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return requireRow(res, "vendor", id)
}
