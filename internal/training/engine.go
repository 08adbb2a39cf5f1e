// Package training applies one training action per career turn: energy
// cost/credit, stat gain under growth/form/bond modifiers, mood update, and
// turn advance. Failed applications mutate nothing at all.
package training

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/ilyakav/turfline/internal/breed"
	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

// Kind identifies one training action.
type Kind string

const (
	KindSpeed   Kind = "speed"
	KindStamina Kind = "stamina"
	KindPower   Kind = "power"
	KindRest    Kind = "rest"
	KindMedia   Kind = "media"
)

// Kinds lists all training kinds in menu order.
var Kinds = []Kind{KindSpeed, KindStamina, KindPower, KindRest, KindMedia}

// kindSpec holds the fixed parameters of a training kind.
// Negative cost restores energy.
type kindSpec struct {
	cost     int
	stat     career.Stat
	hasStat  bool
	baseGain float64
	bondGain int
}

var kindSpecs = map[Kind]kindSpec{
	KindSpeed:   {cost: 15, stat: career.StatSpeed, hasStat: true, baseGain: 6},
	KindStamina: {cost: 15, stat: career.StatStamina, hasStat: true, baseGain: 6},
	KindPower:   {cost: 18, stat: career.StatPower, hasStat: true, baseGain: 6},
	KindRest:    {cost: -35},
	KindMedia:   {cost: -10, bondGain: 7},
}

// Cost returns the energy cost for a kind (negative restores).
func (k Kind) Cost() (int, bool) {
	spec, ok := kindSpecs[k]
	return spec.cost, ok
}

// ErrUnknownKind marks a training kind the engine has no spec for.
// This is a caller bug (a state-machine misconfiguration), never user input.
var ErrUnknownKind = errors.New("training: unknown kind")

// InsufficientEnergyError is the recoverable failure when the competitor
// cannot afford a training's energy cost. Nothing has been mutated.
type InsufficientEnergyError struct {
	Remaining int
	Required  int
}

func (e *InsufficientEnergyError) Error() string {
	return fmt.Sprintf("training: insufficient energy: have %d, need %d", e.Remaining, e.Required)
}

// Result describes one successful training application.
// It is immutable; rendering consumes it read-only.
type Result struct {
	Kind        Kind
	Stat        career.Stat
	StatDelta   int
	EnergyDelta int
	BondDelta   int
	TurnAfter   int
	Mood        career.Mood

	// RaceDue is set when the new turn has a scheduled race.
	RaceDue *schedule.Race
}

// Engine applies training actions. It consults the injected breed catalogue
// for caps and growth, and the schedule for due races. The rng is owned by
// the caller so training and race simulation share one seeded stream.
type Engine struct {
	breeds *breed.Catalogue
	sched  *schedule.Schedule
	rng    *rand.Rand
}

// NewEngine creates a training engine over the given read-only configuration.
func NewEngine(breeds *breed.Catalogue, sched *schedule.Schedule, rng *rand.Rand) *Engine {
	return &Engine{breeds: breeds, sched: sched, rng: rng}
}

// Apply performs one training action for the current turn.
//
// On success the competitor's energy (and stat/bond for the relevant kinds)
// is mutated, mood is recomputed, and the turn advances by exactly 1. On any
// failure nothing is mutated. Randomness order per call: exactly one draw,
// and only for stat-training kinds.
func (e *Engine) Apply(comp *career.Competitor, rec *career.Record, kind Kind) (Result, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if rec.Over() {
		return Result{}, fmt.Errorf("training: career already over at turn %d", rec.Turn)
	}
	if spec.cost > 0 && comp.Condition.Energy < spec.cost {
		return Result{}, &InsufficientEnergyError{
			Remaining: comp.Condition.Energy,
			Required:  spec.cost,
		}
	}

	res := Result{Kind: kind, Stat: spec.stat}

	if spec.hasStat {
		b, err := e.breeds.Get(comp.BreedID)
		if err != nil {
			return Result{}, err
		}
		gain := spec.baseGain *
			b.Growth.Grade(spec.stat).Multiplier() *
			breed.FormMultiplier(comp.Condition.Mood) *
			breed.BondMultiplier(comp.Bond) *
			e.randomFactor()
		rounded := int(math.Round(gain))
		if rounded < 1 {
			rounded = 1
		}
		res.StatDelta = comp.AddStat(spec.stat, rounded, b.Cap(spec.stat))
	}

	res.EnergyDelta = comp.AddEnergy(-spec.cost)
	if spec.bondGain > 0 {
		res.BondDelta = comp.AddBond(spec.bondGain)
	}
	res.Mood = comp.Condition.Mood

	rec.TotalTrainingSessions++
	if err := rec.AdvanceTurn(); err != nil {
		return Result{}, err
	}
	res.TurnAfter = rec.Turn

	// Query by the new absolute turn number, not call count.
	if race, due := e.sched.RaceAt(rec.Turn); due {
		res.RaceDue = &race
	}

	return res, nil
}

// randomFactor returns the per-training variance in [0.8, 1.2].
func (e *Engine) randomFactor() float64 {
	return 0.8 + e.rng.Float64()*0.4
}
