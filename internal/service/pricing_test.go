package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestAdditionalFees(t *testing.T) {
	tests := []struct {
		name        string
		hadPrevious bool
		state       string
		expected    []string
	}{
		{name: "cancelled and in danger zone", hadPrevious: true, state: "AK", expected: []string{"0.15", "0.25"}},
		{name: "in danger zone only", hadPrevious: false, state: "AK", expected: []string{"0.25"}},
		{name: "cancelled only", hadPrevious: true, state: "TX", expected: []string{"0.15"}},
		{name: "neither", hadPrevious: false, state: "TX", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees := AdditionalFees(tt.hadPrevious, tt.state)
			assert.Len(t, fees, len(tt.expected))
			for i, want := range tt.expected {
				assertDecimal(t, want, fees[i])
			}
		})
	}
}

func TestAdditionalDiscounts(t *testing.T) {
	discounts := AdditionalDiscounts(true, true)
	assert.Len(t, discounts, 2)
	assertDecimal(t, "-0.10", discounts[0])
	assertDecimal(t, "-0.20", discounts[1])

	assert.Len(t, AdditionalDiscounts(true, false), 1)
	assert.Len(t, AdditionalDiscounts(false, true), 1)
	assert.Empty(t, AdditionalDiscounts(false, false))
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		rates    []decimal.Decimal
		base     string
		expected string
	}{
		{name: "both discounts on 100", rates: AdditionalDiscounts(true, true), base: "100", expected: "-30.00"},
		{name: "both fees on 100", rates: AdditionalFees(true, "CA"), base: "100", expected: "40.00"},
		{name: "danger fee on 100", rates: AdditionalFees(false, "CA"), base: "100", expected: "25.00"},
		{name: "no rates", rates: AdditionalFees(false, "NJ"), base: "100", expected: "0"},
		// 59.94 * 0.25 = 14.985 rounds half to even.
		{name: "half rounds to even", rates: []decimal.Decimal{DangerZoneFee}, base: "59.94", expected: "14.98"},
		// 59.94 * 0.15 = 8.991
		{name: "rounds down", rates: []decimal.Decimal{PreviousCancellationFee}, base: "59.94", expected: "8.99"},
		// 359.64 * 0.15 = 53.946
		{name: "rounds up", rates: []decimal.Decimal{PreviousCancellationFee}, base: "359.64", expected: "53.95"},
		// 0.125 has an even digit before the half.
		{name: "negative half to even", rates: []decimal.Decimal{d("-0.125")}, base: "1", expected: "-0.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, CalculateTotal(tt.rates, d(tt.base)))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    PricingInput
		expected PricingResult
	}{
		{
			name:  "no fees or discounts",
			input: PricingInput{State: "DC"},
			expected: PricingResult{
				TotalTermPremium:     d("359.64"),
				TotalMonthlyPremium:  d("59.94"),
				TotalAdditionalFee:   d("0"),
				TotalMonthlyFee:      d("0"),
				TotalDiscount:        d("0"),
				TotalMonthlyDiscount: d("0"),
			},
		},
		{
			name:  "every fee and discount",
			input: PricingInput{HadPreviousCancellation: true, NeverCancelled: true, OwnsProperty: true, State: "HI"},
			expected: PricingResult{
				TotalTermPremium:     d("359.64"),
				TotalMonthlyPremium:  d("59.94"),
				TotalAdditionalFee:   d("143.86"),  // 359.64 * 0.40 = 143.856
				TotalMonthlyFee:      d("23.98"),   // 59.94 * 0.40 = 23.976
				TotalDiscount:        d("-107.89"), // 359.64 * -0.30 = -107.892
				TotalMonthlyDiscount: d("-17.98"),  // 59.94 * -0.30 = -17.982
			},
		},
		{
			name:  "danger zone with lower case state",
			input: PricingInput{State: "wa", OwnsProperty: true},
			expected: PricingResult{
				TotalTermPremium:     d("359.64"),
				TotalMonthlyPremium:  d("59.94"),
				TotalAdditionalFee:   d("89.91"),
				TotalMonthlyFee:      d("14.98"),
				TotalDiscount:        d("-71.93"), // -71.928
				TotalMonthlyDiscount: d("-11.99"), // -11.988
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.input)
			assertDecimal(t, tt.expected.TotalTermPremium.String(), got.TotalTermPremium)
			assertDecimal(t, tt.expected.TotalMonthlyPremium.String(), got.TotalMonthlyPremium)
			assertDecimal(t, tt.expected.TotalAdditionalFee.String(), got.TotalAdditionalFee)
			assertDecimal(t, tt.expected.TotalMonthlyFee.String(), got.TotalMonthlyFee)
			assertDecimal(t, tt.expected.TotalDiscount.String(), got.TotalDiscount)
			assertDecimal(t, tt.expected.TotalMonthlyDiscount.String(), got.TotalMonthlyDiscount)
		})
	}
}

func TestPricingResult_Net(t *testing.T) {
	r := Price(PricingInput{HadPreviousCancellation: true, NeverCancelled: true, OwnsProperty: true, State: "HI"})
	assertDecimal(t, "65.94", r.NetMonthlyPremium()) // 59.94 + 23.98 - 17.98
	assertDecimal(t, "395.61", r.NetTermPremium())   // 359.64 + 143.86 - 107.89
}
