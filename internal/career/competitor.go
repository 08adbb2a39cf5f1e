// Package career contains the attribute model for a single racing career:
// the competitor (stats, condition, growth), the career record, and the
// end-of-career grading. All mutation goes through clamped setters so that
// every field stays inside its declared bound.
package career

import "fmt"

// Stat identifies one of the three trainable attributes.
type Stat int

const (
	StatSpeed Stat = iota
	StatStamina
	StatPower
)

// String returns a human-readable name for the stat.
func (s Stat) String() string {
	switch s {
	case StatSpeed:
		return "Speed"
	case StatStamina:
		return "Stamina"
	case StatPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// AllStats lists the stats in canonical order.
var AllStats = []Stat{StatSpeed, StatStamina, StatPower}

// Strategy is the running style used during a race.
type Strategy int

const (
	StrategyFront Strategy = iota // leads from the break
	StrategyMid                   // sits midfield
	StrategyLate                  // closes late
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFront:
		return "Front Runner"
	case StrategyMid:
		return "Stalker"
	case StrategyLate:
		return "Closer"
	default:
		return "Unknown"
	}
}

// Stats holds the three trainable attributes.
// Values are bounded [1, cap] where cap comes from the competitor's breed.
type Stats struct {
	Speed   int
	Stamina int
	Power   int
}

// Get returns the value for a stat.
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatSpeed:
		return s.Speed
	case StatStamina:
		return s.Stamina
	default:
		return s.Power
	}
}

// Total returns the sum of all stats.
func (s Stats) Total() int {
	return s.Speed + s.Stamina + s.Power
}

// Average returns the mean stat value.
func (s Stats) Average() int {
	return s.Total() / len(AllStats)
}

// Competitor is the simulated entity guided through a career.
// Engines receive it by pointer and mutate it in place through the clamped
// setters; they never own its lifecycle.
type Competitor struct {
	ID      string
	Name    string
	BreedID string

	Stats     Stats
	Condition Condition
	Strategy  Strategy

	// Bond is an accumulated affinity value [0,100]. Thresholds grant
	// training multipliers; it only ever grows.
	Bond int
}

// NewCompetitor creates a competitor with the given identity and starting
// stats, full energy and health, and mood derived from both.
func NewCompetitor(id, name, breedID string, start Stats) *Competitor {
	c := &Competitor{
		ID:      id,
		Name:    name,
		BreedID: breedID,
		Stats:   start,
		Condition: Condition{
			Energy: MaxEnergy,
			Health: MaxHealth,
		},
		Strategy: StrategyMid,
	}
	c.Condition.Mood = MoodFor(c.Condition.Energy, c.Condition.Health)
	return c
}

// AddStat adds delta to the given stat, clamping the result to [1, cap].
// Returns the applied delta after clamping.
func (c *Competitor) AddStat(stat Stat, delta, cap int) int {
	before := c.Stats.Get(stat)
	after := clamp(before+delta, 1, cap)
	switch stat {
	case StatSpeed:
		c.Stats.Speed = after
	case StatStamina:
		c.Stats.Stamina = after
	case StatPower:
		c.Stats.Power = after
	}
	return after - before
}

// AddEnergy adds delta to energy, clamping to [0,100], and recomputes mood.
// Returns the applied delta after clamping.
func (c *Competitor) AddEnergy(delta int) int {
	before := c.Condition.Energy
	c.Condition.Energy = clamp(before+delta, 0, MaxEnergy)
	c.Condition.Mood = MoodFor(c.Condition.Energy, c.Condition.Health)
	return c.Condition.Energy - before
}

// AddHealth adds delta to health, clamping to [0,100], and recomputes mood.
func (c *Competitor) AddHealth(delta int) int {
	before := c.Condition.Health
	c.Condition.Health = clamp(before+delta, 0, MaxHealth)
	c.Condition.Mood = MoodFor(c.Condition.Energy, c.Condition.Health)
	return c.Condition.Health - before
}

// AddBond adds delta to the bond value, clamping to [0,100].
// Returns the applied delta after clamping.
func (c *Competitor) AddBond(delta int) int {
	before := c.Bond
	c.Bond = clamp(before+delta, 0, 100)
	return c.Bond - before
}

// Validate reports whether every field is inside its declared bound.
// A violation is a programming defect, not a runtime condition.
func (c *Competitor) Validate(caps Stats) error {
	for _, st := range AllStats {
		v := c.Stats.Get(st)
		if v < 1 || v > caps.Get(st) {
			return fmt.Errorf("career: %s %d outside [1,%d]", st, v, caps.Get(st))
		}
	}
	if c.Condition.Energy < 0 || c.Condition.Energy > MaxEnergy {
		return fmt.Errorf("career: energy %d outside [0,%d]", c.Condition.Energy, MaxEnergy)
	}
	if c.Condition.Health < 0 || c.Condition.Health > MaxHealth {
		return fmt.Errorf("career: health %d outside [0,%d]", c.Condition.Health, MaxHealth)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
