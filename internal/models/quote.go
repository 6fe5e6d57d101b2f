package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is a priced, unpurchased volcano policy offer. Fees are positive and
// discounts negative; all amounts carry two decimal places.
type Quote struct {
	ID                     uuid.UUID       `json:"id"`
	QuoteNumber            string          `json:"quote_number"`
	EffectiveDate          time.Time       `json:"effective_date"`
	PreviouslyCancelPolicy *uuid.UUID      `json:"previously_cancel_policy,omitempty"`
	TotalTermPremium       decimal.Decimal `json:"total_term_premium"`
	TotalMonthlyPremium    decimal.Decimal `json:"total_monthly_premium"`
	TotalAdditionalFee     decimal.Decimal `json:"total_additional_fee"`
	TotalMonthlyFee        decimal.Decimal `json:"total_monthly_fee"`
	TotalDiscount          decimal.Decimal `json:"total_discount"`
	TotalMonthlyDiscount   decimal.Decimal `json:"total_monthly_discount"`
	AddressID              uuid.UUID       `json:"address_id"`
	Address                *Address        `json:"address,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
