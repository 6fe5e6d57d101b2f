package repository

import (
	"context"
	"fmt"

	"volcano-insurance-api/internal/models"

	"github.com/google/uuid"
)

// GetOrCreateAddress returns the address row with exactly these fields,
// inserting it if absent. The no-op update makes the statement return the
// existing row on conflict, so concurrent callers converge on one id.
func (r *Repository) GetOrCreateAddress(ctx context.Context, address, state, zipCode string) (*models.Address, error) {
	sql := `
		INSERT INTO addresses (id, address, state, zip_code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address, state, zip_code)
		DO UPDATE SET address = EXCLUDED.address
		RETURNING id, address, state, zip_code, created_at, updated_at
	`

	var a models.Address
	err := r.db.QueryRow(ctx, sql, uuid.New(), address, state, zipCode).Scan(
		&a.ID,
		&a.Address,
		&a.State,
		&a.ZipCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert address: %w", err)
	}
	return &a, nil
}

// CountAddresses returns the number of stored addresses.
func (r *Repository) CountAddresses(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM addresses").Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count addresses: %w", err)
	}
	return n, nil
}
