package race

import (
	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

// Phase is one segment of a race's distance with its own performance
// weighting. Shares within a profile sum to 1.
type Phase struct {
	Name  string
	Share float64 // fraction of total distance

	// Stat weights for this segment. Early segments favor power and
	// speed, late segments favor stamina.
	SpeedWeight   float64
	StaminaWeight float64
	PowerWeight   float64
}

// phaseProfiles maps race categories to their phase segmentation.
var phaseProfiles = map[schedule.Category][]Phase{
	schedule.CategorySprint: {
		{Name: "break", Share: 0.20, SpeedWeight: 0.30, StaminaWeight: 0.10, PowerWeight: 0.60},
		{Name: "middle", Share: 0.45, SpeedWeight: 0.55, StaminaWeight: 0.25, PowerWeight: 0.20},
		{Name: "stretch", Share: 0.35, SpeedWeight: 0.50, StaminaWeight: 0.35, PowerWeight: 0.15},
	},
	schedule.CategoryMile: {
		{Name: "break", Share: 0.15, SpeedWeight: 0.30, StaminaWeight: 0.10, PowerWeight: 0.60},
		{Name: "early", Share: 0.25, SpeedWeight: 0.45, StaminaWeight: 0.30, PowerWeight: 0.25},
		{Name: "middle", Share: 0.30, SpeedWeight: 0.35, StaminaWeight: 0.45, PowerWeight: 0.20},
		{Name: "stretch", Share: 0.30, SpeedWeight: 0.40, StaminaWeight: 0.45, PowerWeight: 0.15},
	},
	schedule.CategoryDistance: {
		{Name: "break", Share: 0.10, SpeedWeight: 0.30, StaminaWeight: 0.15, PowerWeight: 0.55},
		{Name: "early", Share: 0.20, SpeedWeight: 0.35, StaminaWeight: 0.40, PowerWeight: 0.25},
		{Name: "middle", Share: 0.30, SpeedWeight: 0.25, StaminaWeight: 0.55, PowerWeight: 0.20},
		{Name: "late", Share: 0.20, SpeedWeight: 0.25, StaminaWeight: 0.60, PowerWeight: 0.15},
		{Name: "stretch", Share: 0.20, SpeedWeight: 0.40, StaminaWeight: 0.45, PowerWeight: 0.15},
	},
}

// Phases returns the phase profile for a category.
// Unknown categories fall back to the mile profile.
func Phases(cat schedule.Category) []Phase {
	if p, ok := phaseProfiles[cat]; ok {
		return p
	}
	return phaseProfiles[schedule.CategoryMile]
}

// strategyFit returns the multiplier rewarding a strategy that matches the
// race position of a phase. progress is the distance fraction at the start
// of the phase: front runners are rewarded early, closers late, stalkers
// are near-neutral throughout.
func strategyFit(strat career.Strategy, progress float64) float64 {
	switch strat {
	case career.StrategyFront:
		if progress < 0.4 {
			return 1.12
		}
		if progress > 0.7 {
			return 0.92
		}
		return 1.0
	case career.StrategyLate:
		if progress < 0.4 {
			return 0.92
		}
		if progress > 0.7 {
			return 1.12
		}
		return 1.0
	default: // StrategyMid
		if progress >= 0.4 && progress <= 0.7 {
			return 1.05
		}
		return 1.0
	}
}
