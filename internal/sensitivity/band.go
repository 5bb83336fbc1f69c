package sensitivity

import "github.com/shopspring/decimal"

// Band is the qualitative class of a projected result.
type Band string

const (
	BandNeutral Band = "neutral"
	BandSurplus Band = "surplus"
	BandDeficit Band = "deficit"
)

// Classify puts results within one currency unit of zero in the neutral band.
func Classify(result decimal.Decimal) Band {
	switch {
	case result.Abs().LessThan(decimal.NewFromInt(1)):
		return BandNeutral
	case result.IsPositive():
		return BandSurplus
	default:
		return BandDeficit
	}
}
