package breed

import "github.com/ilyakav/turfline/internal/career"

// FormMultiplier returns the training-gain multiplier for a mood.
// Better form trains harder.
func FormMultiplier(m career.Mood) float64 {
	switch m {
	case career.MoodBad:
		return 0.7
	case career.MoodTired:
		return 0.85
	case career.MoodNormal:
		return 1.0
	case career.MoodGood:
		return 1.1
	case career.MoodGreat:
		return 1.2
	case career.MoodExcellent:
		return 1.3
	default:
		return 1.0
	}
}

// bondTiers maps bond thresholds to training multipliers, highest first.
var bondTiers = []struct {
	threshold  int
	multiplier float64
}{
	{80, 1.2},
	{60, 1.15},
	{40, 1.1},
	{20, 1.05},
}

// BondMultiplier returns the training-gain multiplier for a bond value.
// Thresholds are stepped, not interpolated.
func BondMultiplier(bond int) float64 {
	for _, t := range bondTiers {
		if bond >= t.threshold {
			return t.multiplier
		}
	}
	return 1.0
}
