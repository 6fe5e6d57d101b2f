package service

import (
	"github.com/shopspring/decimal"

	"volcano-insurance-api/internal/usstates"
)

// Pricing constants for a volcano policy.
var (
	MonthlyBase = decimal.RequireFromString("59.94")
	TermMonths  = decimal.NewFromInt(6)
)

// Fee and discount rates, as fractions of the premium they apply to.
var (
	PreviousCancellationFee = decimal.RequireFromString("0.15")
	DangerZoneFee           = decimal.RequireFromString("0.25")
	NeverCancelledDiscount  = decimal.RequireFromString("-0.10")
	OwnsPropertyDiscount    = decimal.RequireFromString("-0.20")
)

// moneyPlaces is the precision of every stored amount.
const moneyPlaces = 2

// PricingInput holds the policy holder attributes that affect the price.
type PricingInput struct {
	HadPreviousCancellation bool
	NeverCancelled          bool
	OwnsProperty            bool
	State                   string
}

// PricingResult holds the computed amounts for a quote.
type PricingResult struct {
	TotalTermPremium     decimal.Decimal
	TotalMonthlyPremium  decimal.Decimal
	TotalAdditionalFee   decimal.Decimal
	TotalMonthlyFee      decimal.Decimal
	TotalDiscount        decimal.Decimal
	TotalMonthlyDiscount decimal.Decimal
}

// NetMonthlyPremium is premium plus fees plus (negative) discounts. It is not
// clamped and can go below zero when every discount applies.
func (r PricingResult) NetMonthlyPremium() decimal.Decimal {
	return r.TotalMonthlyPremium.Add(r.TotalMonthlyFee).Add(r.TotalMonthlyDiscount)
}

// NetTermPremium is the term-level counterpart of NetMonthlyPremium.
func (r PricingResult) NetTermPremium() decimal.Decimal {
	return r.TotalTermPremium.Add(r.TotalAdditionalFee).Add(r.TotalDiscount)
}

// IsInDangerZone reports whether state has an active volcano.
func IsInDangerZone(state string) bool {
	return usstates.IsInDangerZone(state)
}

// AdditionalFees returns the fee rates that apply to a policy holder.
func AdditionalFees(hadPreviousCancellation bool, state string) []decimal.Decimal {
	var fees []decimal.Decimal
	if hadPreviousCancellation {
		fees = append(fees, PreviousCancellationFee)
	}
	if IsInDangerZone(state) {
		fees = append(fees, DangerZoneFee)
	}
	return fees
}

// AdditionalDiscounts returns the discount rates that apply to a policy holder.
// Rates are negative.
func AdditionalDiscounts(neverCancelled, ownsProperty bool) []decimal.Decimal {
	var discounts []decimal.Decimal
	if neverCancelled {
		discounts = append(discounts, NeverCancelledDiscount)
	}
	if ownsProperty {
		discounts = append(discounts, OwnsPropertyDiscount)
	}
	return discounts
}

// CalculateTotal applies the summed rates to base and rounds half to even at
// two decimal places.
func CalculateTotal(rates []decimal.Decimal, base decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rates {
		sum = sum.Add(r)
	}
	return base.Mul(sum).RoundBank(moneyPlaces)
}

// Price computes every amount stored on a quote.
func Price(in PricingInput) PricingResult {
	monthly := MonthlyBase
	term := MonthlyBase.Mul(TermMonths).RoundBank(moneyPlaces)

	fees := AdditionalFees(in.HadPreviousCancellation, in.State)
	discounts := AdditionalDiscounts(in.NeverCancelled, in.OwnsProperty)

	return PricingResult{
		TotalTermPremium:     term,
		TotalMonthlyPremium:  monthly,
		TotalAdditionalFee:   CalculateTotal(fees, term),
		TotalMonthlyFee:      CalculateTotal(fees, monthly),
		TotalDiscount:        CalculateTotal(discounts, term),
		TotalMonthlyDiscount: CalculateTotal(discounts, monthly),
	}
}
