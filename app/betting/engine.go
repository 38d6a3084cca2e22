package betting

import "math"

// The edge and sizing math. Pure functions over float64 with no rounding;
// rounding for display is a presentation concern and compounds error if done
// here.

// ExpectedValue returns the expected profit per unit staked at a decimal
// price given a true win probability: b = dec-1, EV = p*b - (1-p).
func ExpectedValue(p, decimalOdds float64) float64 {
	b := decimalOdds - 1
	return p*b - (1 - p)
}

// RawKellyFraction returns the full Kelly fraction f = (b*p - q) / b with
// b = dec-1 and q = 1-p. Degenerate prices (b <= 0) and negative edges both
// yield zero; this model never produces a lay stake.
func RawKellyFraction(p, decimalOdds float64) float64 {
	b := decimalOdds - 1
	if b <= 0 {
		return 0
	}
	raw := (b*p - (1 - p)) / b
	if raw < 0 {
		return 0
	}
	return raw
}

// StakeSize sizes a stake in currency units: fractional Kelly applied to the
// bankroll, hard-capped at maxStakePct of the bankroll, floored at zero.
// The cap holds for every input, including p = 1 at a price barely above 1.
func StakeSize(p, decimalOdds, bankroll, kellyFraction, maxStakePct float64) float64 {
	proposed := bankroll * RawKellyFraction(p, decimalOdds) * kellyFraction
	if limit := bankroll * maxStakePct; proposed > limit {
		proposed = limit
	}
	if proposed < 0 {
		return 0
	}
	return proposed
}

// Confidence maps an expected value onto [0, 1] for presentation. A 10% EV
// in either direction already counts as full confidence in the decision.
func Confidence(ev float64) float64 {
	c := math.Abs(ev) * 10
	if c > 1 {
		return 1
	}
	return c
}
