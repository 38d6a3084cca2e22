package betting

import (
	"fmt"
	"math"
	"strings"

	"github.com/oddsmith/punt/models"
)

// Odds formats accepted by ToDecimal. Matching is case-insensitive and an
// empty format defaults to decimal.
const (
	OddsFormatDecimal  = "decimal"
	OddsFormatAmerican = "american"
)

// ToDecimal converts a quoted price to decimal odds.
//
// Decimal prices pass through unchanged; the converter does not enforce
// value > 1.0, the staking math degrades such prices to a zero stake.
// American prices map +150 to 2.5 and -120 to 1.8333..., and a zero
// American price is invalid.
func ToDecimal(value float64, format string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case OddsFormatDecimal, "":
		return value, nil
	case OddsFormatAmerican:
		if value == 0 {
			return 0, fmt.Errorf("%w: american odds cannot be zero", models.ErrInvalidOddsFormat)
		}
		if value > 0 {
			return 1 + value/100, nil
		}
		return 1 + 100/math.Abs(value), nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidOddsFormat, format)
	}
}

// ImpliedProbability returns the naive probability implied by a decimal
// price. It includes the bookmaker margin; vig removal is out of scope.
func ImpliedProbability(decimalOdds float64) float64 {
	return 1 / decimalOdds
}
