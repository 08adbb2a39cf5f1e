package race

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

func testRace(fieldSize int) schedule.Race {
	return schedule.Race{
		Turn:      6,
		ID:        "maiden",
		Name:      "Maiden Stakes",
		Category:  schedule.CategoryMile,
		DistanceM: 1600,
		FieldSize: fieldSize,
	}
}

func testPlayer() Entrant {
	return Entrant{
		ID:          "player",
		Name:        "Paper Moon",
		Stats:       career.Stats{Speed: 40, Stamina: 38, Power: 35},
		Strategy:    career.StrategyMid,
		Consistency: 0,
		IsPlayer:    true,
	}
}

func TestBuildField(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)))

	field, err := sim.BuildField(testPlayer(), testRace(8))
	if err != nil {
		t.Fatalf("BuildField() failed: %v", err)
	}
	if len(field) != 8 {
		t.Fatalf("Expected field of 8, got %d", len(field))
	}
	if !field[0].IsPlayer {
		t.Error("Player must hold post 0")
	}

	avg := testPlayer().Stats.Average()
	lo := int(float64(avg) * 0.75)
	hi := int(float64(avg)*1.25) + 1
	for _, e := range field[1:] {
		if e.IsPlayer {
			t.Errorf("Rival %s flagged as player", e.ID)
		}
		for _, st := range career.AllStats {
			v := e.Stats.Get(st)
			if v < 5 || v < lo-1 || v > hi {
				t.Errorf("Rival %s %s=%d outside band [%d,%d]", e.ID, st, v, lo, hi)
			}
		}
		if e.Consistency < 0.5 || e.Consistency > 1.0 {
			t.Errorf("Rival %s consistency %.2f outside [0.5,1.0]", e.ID, e.Consistency)
		}
		if e.Name == "" {
			t.Errorf("Rival %s has no name", e.ID)
		}
	}
}

func TestBuildFieldTooSmall(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)))
	if _, err := sim.BuildField(testPlayer(), testRace(1)); !errors.Is(err, ErrFieldTooSmall) {
		t.Errorf("Expected ErrFieldTooSmall, got %v", err)
	}
}

func TestRunRanksArePermutation(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(3)))
	field, err := sim.BuildField(testPlayer(), testRace(10))
	if err != nil {
		t.Fatalf("BuildField() failed: %v", err)
	}

	out, err := sim.Run(testRace(10), field)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	seen := make(map[int]bool)
	for i, res := range out.Results {
		if res.Rank != i+1 {
			t.Errorf("Results[%d] has rank %d, want %d", i, res.Rank, i+1)
		}
		if seen[res.Rank] {
			t.Errorf("Duplicate rank %d", res.Rank)
		}
		seen[res.Rank] = true
	}
	if len(seen) != 10 {
		t.Errorf("Expected ranks 1..10, got %d distinct ranks", len(seen))
	}

	if out.PlayerRank < 1 || out.PlayerRank > 10 {
		t.Errorf("Player rank %d outside field", out.PlayerRank)
	}
	if out.PlayerResult().Entrant.ID != "player" {
		t.Error("PlayerResult() must return the player's entry")
	}
}

func TestRunTimesNonDecreasing(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(5)))
	field, _ := sim.BuildField(testPlayer(), testRace(12))
	out, err := sim.Run(testRace(12), field)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for i := 1; i < len(out.Results); i++ {
		if out.Results[i].TimeSecs < out.Results[i-1].TimeSecs {
			t.Errorf("Rank %d time %.2f below rank %d time %.2f",
				out.Results[i].Rank, out.Results[i].TimeSecs,
				out.Results[i-1].Rank, out.Results[i-1].TimeSecs)
		}
	}
	if out.Results[0].TimeSecs <= 0 {
		t.Errorf("Winner time %.2f must be positive", out.Results[0].TimeSecs)
	}
}

func TestRunScoresDescending(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(8)))
	field, _ := sim.BuildField(testPlayer(), testRace(8))
	out, err := sim.Run(testRace(8), field)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for i := 1; i < len(out.Results); i++ {
		if out.Results[i].Score > out.Results[i-1].Score {
			t.Errorf("Score rose from rank %d to %d", i, i+1)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() Outcome {
		sim := NewSimulator(rand.New(rand.NewSource(42)))
		field, err := sim.BuildField(testPlayer(), testRace(8))
		if err != nil {
			t.Fatalf("BuildField() failed: %v", err)
		}
		out, err := sim.Run(testRace(8), field)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return out
	}

	a, b := run(), run()
	if a.PlayerRank != b.PlayerRank {
		t.Errorf("Player rank diverged: %d vs %d", a.PlayerRank, b.PlayerRank)
	}
	for i := range a.Results {
		if a.Results[i].Entrant.ID != b.Results[i].Entrant.ID {
			t.Errorf("Order diverged at rank %d: %s vs %s",
				i+1, a.Results[i].Entrant.ID, b.Results[i].Entrant.ID)
		}
		if math.Abs(a.Results[i].Score-b.Results[i].Score) > 1e-9 {
			t.Errorf("Score diverged at rank %d", i+1)
		}
		if a.Results[i].TimeSecs != b.Results[i].TimeSecs {
			t.Errorf("Time diverged at rank %d", i+1)
		}
	}
}

func TestRunFieldTooSmall(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(1)))
	if _, err := sim.Run(testRace(8), []Entrant{testPlayer()}); !errors.Is(err, ErrFieldTooSmall) {
		t.Errorf("Expected ErrFieldTooSmall, got %v", err)
	}
}

func TestPhaseProfiles(t *testing.T) {
	counts := map[schedule.Category]int{
		schedule.CategorySprint:   3,
		schedule.CategoryMile:     4,
		schedule.CategoryDistance: 5,
	}
	for cat, want := range counts {
		phases := Phases(cat)
		if len(phases) != want {
			t.Errorf("Category %s: expected %d phases, got %d", cat, want, len(phases))
		}
		var share float64
		for _, ph := range phases {
			share += ph.Share
		}
		if math.Abs(share-1.0) > 1e-9 {
			t.Errorf("Category %s: phase shares sum to %.3f, want 1", cat, share)
		}
	}

	// Unknown category falls back to the mile profile
	if len(Phases("unknown")) != 4 {
		t.Error("Unknown category must use the mile profile")
	}
}

func TestStrategyFit(t *testing.T) {
	if strategyFit(career.StrategyFront, 0.0) <= strategyFit(career.StrategyLate, 0.0) {
		t.Error("Front runners must beat closers early")
	}
	if strategyFit(career.StrategyLate, 0.8) <= strategyFit(career.StrategyFront, 0.8) {
		t.Error("Closers must beat front runners late")
	}
	if strategyFit(career.StrategyMid, 0.5) != 1.05 {
		t.Error("Stalkers must get the mid-race bonus")
	}
}

func TestPlayback(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(2)))
	field, _ := sim.BuildField(testPlayer(), testRace(6))
	out, err := sim.Run(testRace(6), field)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	pb := NewPlayback(out, 10)
	if pb.Done() {
		t.Error("Fresh playback must not be done")
	}

	pb.Advance()
	mid := pb.Positions()
	for _, lane := range mid {
		if lane.Progress < 0 || lane.Progress >= 1 {
			t.Errorf("Mid-race progress %.3f outside [0,1)", lane.Progress)
		}
		if lane.Finished {
			t.Error("No lane may be finished mid-race")
		}
	}

	for i := 0; i < 20; i++ {
		pb.Advance()
	}
	if !pb.Done() {
		t.Error("Playback must finish after enough frames")
	}
	for _, lane := range pb.Positions() {
		if lane.Progress != 1 {
			t.Errorf("Final progress %.3f, want 1", lane.Progress)
		}
		if !lane.Finished {
			t.Error("All lanes must be finished at the final frame")
		}
	}
	if pb.Skipped() {
		t.Error("Playback that ran to the end was not skipped")
	}
}

func TestPlaybackSkip(t *testing.T) {
	sim := NewSimulator(rand.New(rand.NewSource(2)))
	field, _ := sim.BuildField(testPlayer(), testRace(6))
	out, _ := sim.Run(testRace(6), field)

	pb := NewPlayback(out, 120)
	pb.Advance()
	pb.Skip()

	if !pb.Done() || !pb.Skipped() {
		t.Error("Skip must finish the replay immediately")
	}
	// The outcome itself is untouched by skipping
	if pb.Outcome().PlayerRank != out.PlayerRank {
		t.Error("Skip must not change the outcome")
	}
}
