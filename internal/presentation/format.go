// Package presentation formats budget figures and renders them as terminal
// tables. It reads session state and never changes it.
package presentation

import (
	"fmt"
	"strings"

	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/sensitivity"

	"github.com/shopspring/decimal"
)

// CurrencySymbol returns the display prefix for a currency code.
func CurrencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "", "NOK", "SEK", "DKK":
		return "kr"
	default:
		return strings.ToUpper(code)
	}
}

// FormatNumber rounds to whole units and groups thousands with spaces.
// e.g., 1234567.4 -> "1 234 567"
func FormatNumber(v decimal.Decimal) string {
	r := models.RoundHalfUp(v)
	if r.IsNegative() {
		return "-" + groupDigits(r.Neg().String())
	}
	return groupDigits(r.String())
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatCurrency formats a full amount without decimals.
// e.g., 65000 NOK -> "kr 65 000", -5000 NOK -> "-kr 5 000"
func FormatCurrency(v decimal.Decimal, currency string) string {
	r := models.RoundHalfUp(v)
	if r.IsNegative() {
		return "-" + CurrencySymbol(currency) + " " + FormatNumber(r.Neg())
	}
	return CurrencySymbol(currency) + " " + FormatNumber(r)
}

var compactUnits = []struct {
	scale  decimal.Decimal
	suffix string
	places int32
}{
	{decimal.NewFromInt(1), "", 0},
	{decimal.NewFromInt(1_000), "k", 1},
	{decimal.NewFromInt(1_000_000), " mill.", 1},
	{decimal.NewFromInt(1_000_000_000), " mrd.", 1},
}

var unitStep = decimal.NewFromInt(1_000)

// FormatCompact formats an amount with a short suffix and at most one
// decimal, using a comma as decimal separator. The value is rounded before
// the suffix is final, so 999 950 becomes "1 mill." rather than "1000k".
// e.g., 65000 -> "65k", 1234000 -> "1,2 mill.", -1500 -> "-1,5k"
func FormatCompact(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + FormatCompact(v.Neg())
	}
	i := 0
	for i+1 < len(compactUnits) && v.GreaterThanOrEqual(compactUnits[i+1].scale) {
		i++
	}
	scaled := v.Div(compactUnits[i].scale).Round(compactUnits[i].places)
	if i+1 < len(compactUnits) && scaled.GreaterThanOrEqual(unitStep) {
		i++
		scaled = v.Div(compactUnits[i].scale).Round(compactUnits[i].places)
	}
	return oneDecimal(scaled) + compactUnits[i].suffix
}

func oneDecimal(v decimal.Decimal) string {
	return strings.Replace(v.String(), ".", ",", 1)
}

// FormatStep labels a matrix axis step: "Nå" at the center, else a signed
// percentage such as "+10%" or "-20%".
func FormatStep(index int) string {
	if index == sensitivity.CenterIndex {
		return "Nå"
	}
	pct := sensitivity.Steps[index].Shift(2)
	if pct.IsPositive() {
		return fmt.Sprintf("+%s%%", pct.String())
	}
	return pct.String() + "%"
}
