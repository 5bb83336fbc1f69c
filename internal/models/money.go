package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency budgets are kept in unless configured otherwise.
const DefaultCurrency = "NOK"

// CoerceNonNegative turns raw user input into a non-negative number.
// Non-numeric input and negative values become zero; a decimal comma is
// accepted as well as a decimal point.
func CoerceNonNegative(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	raw = strings.ReplaceAll(raw, " ", "")
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return ClampNonNegative(value)
}

// ClampNonNegative returns value, or zero when value is negative.
func ClampNonNegative(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// RoundHalfUp rounds to the nearest whole number, halves away from zero.
// Budget numbers are non-negative so this is round-half-up.
func RoundHalfUp(value decimal.Decimal) decimal.Decimal {
	return value.Round(0)
}

// SumAmounts adds up the amounts of the given items.
func SumAmounts(items []BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	return total
}
