package model

import "math"

// RateTier is the overtime bucket derived from an entry's pay-rate multiplier.
type RateTier int

const (
	// TierNormal is regular time (rate 1.0), excluded from overtime reports
	TierNormal RateTier = iota
	// TierOvertime50 is time paid at a 50% premium (rate 1.5)
	TierOvertime50
	// TierOvertime100 is time paid at a 100% premium (rate 2.0)
	TierOvertime100
	// TierOther is any rate outside the known set, excluded but reported as an anomaly
	TierOther
)

// rateEpsilon tolerates the upstream float representation of rate multipliers
const rateEpsilon = 1e-6

// ClassifyRate maps a raw rate multiplier to its tier. Every float maps to
// exactly one tier.
func ClassifyRate(rate float64) RateTier {
	switch {
	case math.Abs(rate-1.0) < rateEpsilon:
		return TierNormal
	case math.Abs(rate-1.5) < rateEpsilon:
		return TierOvertime50
	case math.Abs(rate-2.0) < rateEpsilon:
		return TierOvertime100
	default:
		return TierOther
	}
}

// String returns the tier's report label.
func (t RateTier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierOvertime50:
		return "50%"
	case TierOvertime100:
		return "100%"
	default:
		return "other"
	}
}

// IsOvertime reports whether the tier contributes to overtime totals.
func (t RateTier) IsOvertime() bool {
	return t == TierOvertime50 || t == TierOvertime100
}
