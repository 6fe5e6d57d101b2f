package repository

import (
	"context"
	"fmt"

	"volcano-insurance-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// IsValid reports whether zip is a known US postal code.
func (r *Repository) IsValid(ctx context.Context, zip string) (bool, error) {
	sql := `
		SELECT EXISTS (
			SELECT 1 FROM postal_codes
			WHERE country_code = 'US' AND postal_code = $1
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, sql, zip).Scan(&exists); err != nil {
		return false, fmt.Errorf("repository: failed to look up postal code: %w", err)
	}
	return exists, nil
}

// ReplacePostalCodes swaps the postal code table for records in one transaction.
func (r *Repository) ReplacePostalCodes(ctx context.Context, records []models.PostalCode) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, "TRUNCATE postal_codes"); err != nil {
		return 0, fmt.Errorf("repository: failed to truncate postal codes: %w", err)
	}

	// Source files repeat a code once per place it serves; keep the first.
	seen := make(map[string]struct{}, len(records))
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		key := rec.CountryCode + "|" + rec.PostalCode
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, []any{
			rec.CountryCode, rec.PostalCode, rec.PlaceName, rec.StateName, rec.StateCode, rec.Latitude, rec.Longitude,
		})
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"postal_codes"},
		[]string{"country_code", "postal_code", "place_name", "state_name", "state_code", "latitude", "longitude"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy postal codes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit postal codes: %w", err)
	}
	return n, nil
}

// CountPostalCodes returns the number of rows in the postal code table.
func (r *Repository) CountPostalCodes(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM postal_codes").Scan(&n); err != nil {
		return 0, fmt.Errorf("repository: failed to count postal codes: %w", err)
	}
	return n, nil
}
