package repository

import (
	"context"
	"errors"
	"fmt"

	"volcano-insurance-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreatePolicy inserts p, filling in its id and timestamps. A policy number
// that already exists yields ErrDuplicate.
func (r *Repository) CreatePolicy(ctx context.Context, p *models.Policy) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	sql := `
		INSERT INTO policies (
			id,
			policy_number,
			is_active,
			is_cancel,
			address_id,
			total_monthly_premium,
			effective_date,
			quote_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (policy_number) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, sql,
		p.ID,
		p.PolicyNumber,
		p.IsActive,
		p.IsCancel,
		p.AddressID,
		p.TotalMonthlyPremium,
		p.EffectiveDate,
		p.QuoteID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("repository: policy number %s: %w", p.PolicyNumber, ErrDuplicate)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repository: policy %s: %w", p.PolicyNumber, ErrDuplicate)
		}
		return fmt.Errorf("repository: failed to insert policy: %w", err)
	}
	return nil
}

// GetPolicyByNumber returns the policy with the given number.
func (r *Repository) GetPolicyByNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	sql := `
		SELECT
			id,
			policy_number,
			is_active,
			is_cancel,
			address_id,
			total_monthly_premium,
			effective_date,
			quote_id,
			created_at,
			updated_at
		FROM policies
		WHERE policy_number = $1
	`

	var p models.Policy
	err := r.db.QueryRow(ctx, sql, policyNumber).Scan(
		&p.ID,
		&p.PolicyNumber,
		&p.IsActive,
		&p.IsCancel,
		&p.AddressID,
		&p.TotalMonthlyPremium,
		&p.EffectiveDate,
		&p.QuoteID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get policy: %w", err)
	}
	return &p, nil
}
