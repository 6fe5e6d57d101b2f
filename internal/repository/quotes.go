package repository

import (
	"context"
	"errors"
	"fmt"

	"volcano-insurance-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateQuote inserts q, filling in its id and timestamps. A taken quote
// number yields ErrDuplicate and leaves the table unchanged.
func (r *Repository) CreateQuote(ctx context.Context, q *models.Quote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}

	sql := `
		INSERT INTO quotes (
			id,
			quote_number,
			effective_date,
			previously_cancel_policy_id,
			total_term_premium,
			total_monthly_premium,
			total_additional_fee,
			total_monthly_fee,
			total_discount,
			total_monthly_discount,
			address_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (quote_number) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, sql,
		q.ID,
		q.QuoteNumber,
		q.EffectiveDate,
		q.PreviouslyCancelPolicy,
		q.TotalTermPremium,
		q.TotalMonthlyPremium,
		q.TotalAdditionalFee,
		q.TotalMonthlyFee,
		q.TotalDiscount,
		q.TotalMonthlyDiscount,
		q.AddressID,
	).Scan(&q.CreatedAt, &q.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("repository: quote number %s: %w", q.QuoteNumber, ErrDuplicate)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repository: quote %s: %w", q.QuoteNumber, ErrDuplicate)
		}
		return fmt.Errorf("repository: failed to insert quote: %w", err)
	}
	return nil
}

// FindQuotesByNumber returns every quote with the given number, with its address.
func (r *Repository) FindQuotesByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error) {
	sql := `
		SELECT
			q.id,
			q.quote_number,
			q.effective_date,
			q.previously_cancel_policy_id,
			q.total_term_premium,
			q.total_monthly_premium,
			q.total_additional_fee,
			q.total_monthly_fee,
			q.total_discount,
			q.total_monthly_discount,
			q.address_id,
			q.created_at,
			q.updated_at,
			a.address,
			a.state,
			a.zip_code,
			a.created_at,
			a.updated_at
		FROM quotes q
		JOIN addresses a ON a.id = q.address_id
		WHERE q.quote_number = $1
		ORDER BY q.created_at
	`

	rows, err := r.db.Query(ctx, sql, quoteNumber)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute quote query: %w", err)
	}
	defer rows.Close()

	quotes := []models.Quote{}
	for rows.Next() {
		var q models.Quote
		var a models.Address
		err := rows.Scan(
			&q.ID,
			&q.QuoteNumber,
			&q.EffectiveDate,
			&q.PreviouslyCancelPolicy,
			&q.TotalTermPremium,
			&q.TotalMonthlyPremium,
			&q.TotalAdditionalFee,
			&q.TotalMonthlyFee,
			&q.TotalDiscount,
			&q.TotalMonthlyDiscount,
			&q.AddressID,
			&q.CreatedAt,
			&q.UpdatedAt,
			&a.Address,
			&a.State,
			&a.ZipCode,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan quote: %w", err)
		}
		a.ID = q.AddressID
		q.Address = &a
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return quotes, nil
}
