package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Policy is a purchased volcano policy created by checking out a Quote.
type Policy struct {
	ID                  uuid.UUID       `json:"id"`
	PolicyNumber        string          `json:"policy_number"`
	IsActive            bool            `json:"is_active"`
	IsCancel            bool            `json:"is_cancel"`
	AddressID           uuid.UUID       `json:"address_id"`
	TotalMonthlyPremium decimal.Decimal `json:"total_monthly_premium"`
	EffectiveDate       time.Time       `json:"effective_date"`
	QuoteID             uuid.UUID       `json:"quote_id"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
