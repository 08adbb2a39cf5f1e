// Package breed provides the read-only modifier tables consumed by the
// training engine and race simulator: per-breed stat caps and growth grades,
// form (mood) multipliers, and bond-threshold multipliers.
//
// Breeds are plain data records selected by ID - specialization is
// parameterized formulas, not subtypes.
package breed

import (
	"fmt"
	"sort"

	"github.com/ilyakav/turfline/internal/career"
)

// GrowthGrade rates how well a breed responds to training one stat.
type GrowthGrade string

const (
	GradeG GrowthGrade = "G"
	GradeF GrowthGrade = "F"
	GradeE GrowthGrade = "E"
	GradeD GrowthGrade = "D"
	GradeC GrowthGrade = "C"
	GradeB GrowthGrade = "B"
	GradeA GrowthGrade = "A"
	GradeS GrowthGrade = "S"
)

// growthMultipliers maps grades to training-gain multipliers.
var growthMultipliers = map[GrowthGrade]float64{
	GradeG: 0.6,
	GradeF: 0.7,
	GradeE: 0.8,
	GradeD: 0.9,
	GradeC: 1.0,
	GradeB: 1.1,
	GradeA: 1.25,
	GradeS: 1.4,
}

// Multiplier returns the training multiplier for the grade.
// Unknown grades read as neutral.
func (g GrowthGrade) Multiplier() float64 {
	if m, ok := growthMultipliers[g]; ok {
		return m
	}
	return 1.0
}

// Valid reports whether the grade is one of the known letters.
func (g GrowthGrade) Valid() bool {
	_, ok := growthMultipliers[g]
	return ok
}

// Growth holds the per-stat growth grades of a breed.
type Growth struct {
	Speed   GrowthGrade `yaml:"speed"`
	Stamina GrowthGrade `yaml:"stamina"`
	Power   GrowthGrade `yaml:"power"`
}

// Grade returns the growth grade for a stat.
func (g Growth) Grade(stat career.Stat) GrowthGrade {
	switch stat {
	case career.StatSpeed:
		return g.Speed
	case career.StatStamina:
		return g.Stamina
	default:
		return g.Power
	}
}

// Breed is one variant's data record.
type Breed struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Caps        career.Stats `yaml:"caps"`
	Growth      Growth       `yaml:"growth"`
	// PreferredStrategy is a hint shown during strategy selection,
	// never enforced. One of "front", "mid", "late".
	PreferredStrategy string     `yaml:"preferred_strategy"`
	StartBonus        StartBonus `yaml:"start_bonus"`
}

// StartBonus is the breed's addition to the scenario's base starting stats.
type StartBonus struct {
	Speed   int `yaml:"speed"`
	Stamina int `yaml:"stamina"`
	Power   int `yaml:"power"`
}

// Preferred returns the preferred strategy as an enum, defaulting to mid.
func (b Breed) Preferred() career.Strategy {
	switch b.PreferredStrategy {
	case "front":
		return career.StrategyFront
	case "late":
		return career.StrategyLate
	default:
		return career.StrategyMid
	}
}

// Cap returns the breed's cap for a stat.
func (b Breed) Cap(stat career.Stat) int {
	return b.Caps.Get(stat)
}

// Catalogue is an immutable set of breeds keyed by ID.
// It is injected into the engines at construction, never accessed globally.
type Catalogue struct {
	breeds map[string]Breed
}

// NewCatalogue validates the breed records and builds a catalogue.
func NewCatalogue(breeds []Breed) (*Catalogue, error) {
	if len(breeds) == 0 {
		return nil, fmt.Errorf("breed: catalogue is empty")
	}
	m := make(map[string]Breed, len(breeds))
	for _, b := range breeds {
		if b.ID == "" {
			return nil, fmt.Errorf("breed: record %q has no id", b.Name)
		}
		if _, dup := m[b.ID]; dup {
			return nil, fmt.Errorf("breed: duplicate id %q", b.ID)
		}
		for _, st := range career.AllStats {
			if b.Caps.Get(st) < 1 {
				return nil, fmt.Errorf("breed %s: %s cap %d below 1", b.ID, st, b.Caps.Get(st))
			}
			if !b.Growth.Grade(st).Valid() {
				return nil, fmt.Errorf("breed %s: unknown %s growth grade %q", b.ID, st, b.Growth.Grade(st))
			}
		}
		m[b.ID] = b
	}
	return &Catalogue{breeds: m}, nil
}

// Get returns the breed for an ID.
func (c *Catalogue) Get(id string) (Breed, error) {
	b, ok := c.breeds[id]
	if !ok {
		return Breed{}, fmt.Errorf("breed: unknown id %q", id)
	}
	return b, nil
}

// IDs returns all breed IDs, sorted.
func (c *Catalogue) IDs() []string {
	ids := make([]string, 0, len(c.breeds))
	for id := range c.breeds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the breeds sorted by ID.
func (c *Catalogue) All() []Breed {
	out := make([]Breed, 0, len(c.breeds))
	for _, id := range c.IDs() {
		out = append(out, c.breeds[id])
	}
	return out
}
