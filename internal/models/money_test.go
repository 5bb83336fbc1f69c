package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"integer", "50", "50"},
		{"decimal point", "12.5", "12.5"},
		{"decimal comma", "12,5", "12.5"},
		{"grouped with spaces", "15 000", "15000"},
		{"negative clamps to zero", "-3", "0"},
		{"non-numeric clamps to zero", "abc", "0"},
		{"NaN clamps to zero", "NaN", "0"},
		{"empty is zero", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceNonNegative(tt.raw)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestClampNonNegative(t *testing.T) {
	assert.True(t, ClampNonNegative(decimal.NewFromInt(-1)).IsZero())
	assert.True(t, ClampNonNegative(decimal.NewFromInt(7)).Equal(decimal.NewFromInt(7)))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, "45", RoundHalfUp(decimal.RequireFromString("45")).String())
	assert.Equal(t, "3", RoundHalfUp(decimal.RequireFromString("2.5")).String())
	assert.Equal(t, "2", RoundHalfUp(decimal.RequireFromString("2.49")).String())
	assert.Equal(t, "0", RoundHalfUp(decimal.Zero).String())
}

func TestSumAmounts(t *testing.T) {
	items := []BudgetItem{
		NewFixedItem("1", "a", CategoryIncome, decimal.NewFromInt(15000)),
		NewVariableItem("2", "b", CategoryIncome, decimal.NewFromInt(50), decimal.NewFromInt(1000)),
	}
	assert.True(t, SumAmounts(items).Equal(decimal.NewFromInt(65000)))
	assert.True(t, SumAmounts(nil).IsZero())
}
