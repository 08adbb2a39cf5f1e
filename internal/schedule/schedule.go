// Package schedule holds the fixed turn-to-race mapping for a career.
// The schedule itself is immutable; the only mutable piece is how many of
// its races have actually been run, incremented by the caller once a result
// has been produced and consumed. The scheduler never runs a race.
package schedule

import "fmt"

// Category determines the distance profile of a race.
type Category string

const (
	CategorySprint   Category = "sprint"
	CategoryMile     Category = "mile"
	CategoryDistance Category = "distance"
)

// Valid reports whether the category is known.
func (c Category) Valid() bool {
	switch c {
	case CategorySprint, CategoryMile, CategoryDistance:
		return true
	}
	return false
}

// Race is one scheduled competitive event.
type Race struct {
	Turn      int      `yaml:"turn"`
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Category  Category `yaml:"category"`
	DistanceM int      `yaml:"distance_m"`
	FieldSize int      `yaml:"field_size"`
}

// Schedule is an ordered, immutable list of scheduled races.
type Schedule struct {
	races     []Race
	completed int
}

// New validates and builds a schedule. Race turns must be strictly
// increasing and all within [1, maxTurns].
func New(races []Race, maxTurns int) (*Schedule, error) {
	prev := 0
	for i, r := range races {
		if r.ID == "" {
			return nil, fmt.Errorf("schedule: race %d has no id", i)
		}
		if r.Turn <= prev {
			return nil, fmt.Errorf("schedule: race %s at turn %d not after turn %d", r.ID, r.Turn, prev)
		}
		if r.Turn > maxTurns {
			return nil, fmt.Errorf("schedule: race %s at turn %d past career end %d", r.ID, r.Turn, maxTurns)
		}
		if !r.Category.Valid() {
			return nil, fmt.Errorf("schedule: race %s has unknown category %q", r.ID, r.Category)
		}
		if r.FieldSize < 2 {
			return nil, fmt.Errorf("schedule: race %s field size %d below 2", r.ID, r.FieldSize)
		}
		prev = r.Turn
	}
	cp := make([]Race, len(races))
	copy(cp, races)
	return &Schedule{races: cp}, nil
}

// RaceAt returns the race due at the given turn, if any.
// Queried by absolute turn number, so revisiting a turn is harmless.
func (s *Schedule) RaceAt(turn int) (Race, bool) {
	for _, r := range s.races {
		if r.Turn == turn {
			return r, true
		}
	}
	return Race{}, false
}

// Races returns a copy of the full schedule.
func (s *Schedule) Races() []Race {
	cp := make([]Race, len(s.races))
	copy(cp, s.races)
	return cp
}

// Total returns the number of scheduled races.
func (s *Schedule) Total() int {
	return len(s.races)
}

// Completed returns how many races have been run.
func (s *Schedule) Completed() int {
	return s.completed
}

// Remaining returns how many scheduled races have not been run yet.
func (s *Schedule) Remaining() int {
	return len(s.races) - s.completed
}

// AllCompleted reports whether every scheduled race has been run.
func (s *Schedule) AllCompleted() bool {
	return s.completed >= len(s.races)
}

// MarkCompleted records that one more scheduled race has been run.
// Marking beyond the schedule is a caller bug.
func (s *Schedule) MarkCompleted() error {
	if s.completed >= len(s.races) {
		return fmt.Errorf("schedule: all %d races already completed", len(s.races))
	}
	s.completed++
	return nil
}

// RestoreCompleted sets the completed count when resuming from a snapshot.
func (s *Schedule) RestoreCompleted(n int) error {
	if n < 0 || n > len(s.races) {
		return fmt.Errorf("schedule: completed count %d outside [0,%d]", n, len(s.races))
	}
	s.completed = n
	return nil
}
