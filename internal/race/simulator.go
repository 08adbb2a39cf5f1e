// Package race simulates a scheduled competitive event. The simulator builds
// a field around the player, computes phase-segmented performance with
// bounded randomness, and emits one immutable ranked Outcome per call.
// Presentation pacing of that outcome lives in Playback, never here.
package race

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

// ErrFieldTooSmall marks a race configured with fewer than two entrants.
var ErrFieldTooSmall = errors.New("race: field needs at least 2 entrants")

// Entrant is one participant in a race.
type Entrant struct {
	ID       string
	Name     string
	Stats    career.Stats
	Strategy career.Strategy

	// Consistency in [0,1] dampens this entrant's per-phase randomness.
	// The player runs at full variance.
	Consistency float64

	IsPlayer bool
}

// Result is one entrant's final placing.
type Result struct {
	Entrant  Entrant
	Rank     int
	Score    float64
	TimeSecs float64
}

// Outcome is the ranked result of one simulated race.
// Ranks are a permutation of 1..N. Created once, consumed read-only.
type Outcome struct {
	Race    schedule.Race
	Results []Result // sorted by rank ascending

	// PlayerRank is the player's final rank, 1-based.
	PlayerRank int

	// PhaseScores[i][p] is entrant i's (field order) score in phase p,
	// kept for playback interpolation.
	PhaseScores [][]float64
	FieldOrder  []string // entrant IDs in post order
}

// Won reports whether the player took rank 1.
func (o Outcome) Won() bool {
	return o.PlayerRank == 1
}

// PlayerResult returns the player's entry.
func (o Outcome) PlayerResult() Result {
	for _, r := range o.Results {
		if r.Entrant.IsPlayer {
			return r
		}
	}
	return Result{}
}

// rivalNames seeds synthetic field generation. Names repeat with a numeric
// suffix when a field outgrows the list.
var rivalNames = []string{
	"Duskfall", "Harbor Light", "Second Wind", "Paper Crane", "Long Shadow",
	"Copper Bell", "Stone Lantern", "Night Ferry", "Red Harvest", "Glass River",
	"Far Signal", "Old Money", "Winter Palace", "True North",
}

// Simulator runs races. The rng is injected so a fixed seed reproduces the
// full career; draws happen in a fixed, documented order.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator creates a race simulator over the given random source.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// BuildField synthesizes the N-1 rivals around the player's current average
// stat level so difficulty scales with progress. Randomness order: for each
// rival in post order, three stat draws, then one strategy draw, then one
// consistency draw.
func (s *Simulator) BuildField(player Entrant, spec schedule.Race) ([]Entrant, error) {
	if spec.FieldSize < 2 {
		return nil, fmt.Errorf("%w: field size %d for race %s", ErrFieldTooSmall, spec.FieldSize, spec.ID)
	}

	avg := player.Stats.Average()
	field := make([]Entrant, 0, spec.FieldSize)
	field = append(field, player)

	for i := 1; i < spec.FieldSize; i++ {
		name := rivalNames[(i-1)%len(rivalNames)]
		if i-1 >= len(rivalNames) {
			name = fmt.Sprintf("%s II", name)
		}
		rival := Entrant{
			ID:   fmt.Sprintf("%s-rival-%d", spec.ID, i),
			Name: name,
			Stats: career.Stats{
				Speed:   rivalStat(s.rng, avg),
				Stamina: rivalStat(s.rng, avg),
				Power:   rivalStat(s.rng, avg),
			},
		}
		rival.Strategy = career.Strategy(s.rng.Intn(3))
		rival.Consistency = 0.5 + s.rng.Float64()*0.5
		field = append(field, rival)
	}

	return field, nil
}

// rivalStat draws one rival stat around the player average: +-25%, floor 5.
func rivalStat(rng *rand.Rand, avg int) int {
	variance := float64(avg) * 0.25
	v := float64(avg) + (rng.Float64()*2-1)*variance
	if v < 5 {
		v = 5
	}
	return int(v)
}

// Run simulates a race for the given field. The field must already satisfy
// the stat invariants; the simulator trusts clamped inputs.
//
// Randomness order: entrant-major, phase-minor - for each entrant in post
// order, one variance draw per phase. Ties break by post order, never by
// re-randomizing.
func (s *Simulator) Run(spec schedule.Race, field []Entrant) (Outcome, error) {
	if len(field) < 2 {
		return Outcome{}, fmt.Errorf("%w: got %d", ErrFieldTooSmall, len(field))
	}

	phases := Phases(spec.Category)

	type scored struct {
		post  int
		total float64
	}

	phaseScores := make([][]float64, len(field))
	totals := make([]scored, len(field))
	for i, ent := range field {
		phaseScores[i] = make([]float64, len(phases))
		progress := 0.0
		var total float64
		for p, ph := range phases {
			base := float64(ent.Stats.Speed)*ph.SpeedWeight +
				float64(ent.Stats.Stamina)*ph.StaminaWeight +
				float64(ent.Stats.Power)*ph.PowerWeight

			// Bounded +-15% variance, damped by consistency.
			spread := 0.15 * (1 - 0.6*ent.Consistency)
			variance := 1 + (s.rng.Float64()*2-1)*spread

			score := base * variance * strategyFit(ent.Strategy, progress)
			phaseScores[i][p] = score
			total += score * ph.Share
			progress += ph.Share
		}
		totals[i] = scored{post: i, total: total}
	}

	// Stable sort on descending total keeps post order as the tie-break.
	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].total > totals[b].total
	})

	out := Outcome{
		Race:        spec,
		Results:     make([]Result, len(field)),
		PhaseScores: phaseScores,
		FieldOrder:  make([]string, len(field)),
	}
	for i, ent := range field {
		out.FieldOrder[i] = ent.ID
	}

	winner := totals[0].total
	for rank0, sc := range totals {
		ent := field[sc.post]
		res := Result{
			Entrant:  ent,
			Rank:     rank0 + 1,
			Score:    sc.total,
			TimeSecs: finishTime(spec, winner, sc.total, rank0),
		}
		out.Results[rank0] = res
		if ent.IsPlayer {
			out.PlayerRank = res.Rank
		}
	}

	return out, nil
}

// finishTime derives a synthetic time that never decreases with rank: the
// winner's time comes from the distance and score, and each following rank
// adds a margin proportional to the score gap, with a minimum nose margin.
func finishTime(spec schedule.Race, winnerScore, score float64, rank0 int) float64 {
	base := float64(spec.DistanceM) / 16.5 // winning pace around 59 km/h
	if winnerScore > 0 {
		base *= 1 + (100-winnerScore)/1000 // stronger fields run faster
	}
	if rank0 == 0 {
		return roundCenti(base)
	}
	gap := (winnerScore - score) / winnerScore
	if gap < 0 {
		gap = 0
	}
	margin := gap*8 + 0.05*float64(rank0)
	return roundCenti(base + margin)
}

func roundCenti(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
