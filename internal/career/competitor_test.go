package career

import "testing"

func TestStatClamping(t *testing.T) {
	c := NewCompetitor("p1", "Test", "ember", Stats{Speed: 20, Stamina: 20, Power: 20})

	// Clamp at cap
	applied := c.AddStat(StatSpeed, 200, 105)
	if applied != 85 {
		t.Errorf("Expected applied delta 85, got %d", applied)
	}
	if c.Stats.Speed != 105 {
		t.Errorf("Expected speed clamped to 105, got %d", c.Stats.Speed)
	}

	// Clamp at floor
	applied = c.AddStat(StatStamina, -100, 105)
	if applied != -19 {
		t.Errorf("Expected applied delta -19, got %d", applied)
	}
	if c.Stats.Stamina != 1 {
		t.Errorf("Expected stamina floored at 1, got %d", c.Stats.Stamina)
	}
}

func TestEnergyClampingUpdatesMood(t *testing.T) {
	c := NewCompetitor("p1", "Test", "ember", Stats{Speed: 20, Stamina: 20, Power: 20})

	if c.Condition.Mood != MoodExcellent {
		t.Fatalf("Expected fresh competitor in Excellent mood, got %v", c.Condition.Mood)
	}

	c.AddEnergy(-90)
	if c.Condition.Energy != 10 {
		t.Errorf("Expected energy 10, got %d", c.Condition.Energy)
	}
	if c.Condition.Mood != MoodBad {
		t.Errorf("Expected Bad mood at energy 10, got %v", c.Condition.Mood)
	}

	// Over-credit clamps at the ceiling
	c.AddEnergy(500)
	if c.Condition.Energy != MaxEnergy {
		t.Errorf("Expected energy clamped to %d, got %d", MaxEnergy, c.Condition.Energy)
	}
}

func TestMoodFor(t *testing.T) {
	cases := []struct {
		energy, health int
		want           Mood
	}{
		{100, 100, MoodExcellent},
		{90, 95, MoodExcellent},
		{80, 100, MoodGreat},
		{60, 90, MoodGood},
		{40, 100, MoodNormal},
		{20, 100, MoodTired},
		{10, 100, MoodBad},
		{100, 10, MoodBad}, // low health dominates
	}
	for _, tc := range cases {
		if got := MoodFor(tc.energy, tc.health); got != tc.want {
			t.Errorf("MoodFor(%d, %d) = %v, want %v", tc.energy, tc.health, got, tc.want)
		}
	}
}

func TestMoodOrdering(t *testing.T) {
	order := []Mood{MoodBad, MoodTired, MoodNormal, MoodGood, MoodGreat, MoodExcellent}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("Mood ordering broken: %v >= %v", order[i-1], order[i])
		}
	}
}

func TestRecordTurnAdvance(t *testing.T) {
	rec := NewRecord(3)

	for want := 2; want <= 4; want++ {
		if err := rec.AdvanceTurn(); err != nil {
			t.Fatalf("AdvanceTurn() failed at turn %d: %v", rec.Turn, err)
		}
		if rec.Turn != want {
			t.Errorf("Expected turn %d, got %d", want, rec.Turn)
		}
	}

	if !rec.Over() {
		t.Error("Expected career over at turn maxTurns+1")
	}
	if err := rec.AdvanceTurn(); err == nil {
		t.Error("Expected error advancing past maxTurns+1")
	}
	if rec.Turn != 4 {
		t.Errorf("Failed advance must not move the turn, got %d", rec.Turn)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := NewCompetitor("p1", "Paper Moon", "oak", Stats{Speed: 30, Stamina: 44, Power: 25})
	c.AddEnergy(-40)
	c.AddBond(35)
	c.Strategy = StrategyLate

	rec := NewRecord(24)
	rec.Turn = 13
	rec.RacesRun = 2
	rec.RacesWon = 1
	rec.TotalTrainingSessions = 12

	snap := TakeSnapshot(c, rec, 2)
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() failed: %v", err)
	}

	c2, rec2 := decoded.Restore()
	if c2.Name != c.Name || c2.BreedID != c.BreedID {
		t.Errorf("Identity mismatch: got %s/%s", c2.Name, c2.BreedID)
	}
	if c2.Stats != c.Stats {
		t.Errorf("Stats mismatch: %+v vs %+v", c2.Stats, c.Stats)
	}
	if c2.Condition.Energy != c.Condition.Energy {
		t.Errorf("Energy mismatch: %d vs %d", c2.Condition.Energy, c.Condition.Energy)
	}
	if c2.Condition.Mood != MoodFor(c2.Condition.Energy, c2.Condition.Health) {
		t.Error("Restored mood must be derived from energy/health")
	}
	if c2.Strategy != StrategyLate || c2.Bond != 35 {
		t.Errorf("Strategy/bond mismatch: %v/%d", c2.Strategy, c2.Bond)
	}
	if *rec2 != *rec {
		t.Errorf("Record mismatch: %+v vs %+v", rec2, rec)
	}
	if decoded.RacesCompleted != 2 {
		t.Errorf("Expected 2 races completed, got %d", decoded.RacesCompleted)
	}
}

func TestDecodeSnapshotRejectsUnknownVersion(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("version: 99\n")); err == nil {
		t.Error("Expected error for unknown snapshot version")
	}
}

func TestFinalGrade(t *testing.T) {
	perfect := &Record{MaxTurns: 24, RacesRun: 4, RacesWon: 4}
	if g := FinalGrade(perfect, Stats{Speed: 100, Stamina: 100, Power: 100}); g != GradeS {
		t.Errorf("Expected S for a perfect career, got %s", g)
	}

	winless := &Record{MaxTurns: 24, RacesRun: 4, RacesWon: 0}
	if g := FinalGrade(winless, Stats{Speed: 25, Stamina: 25, Power: 25}); g != GradeD {
		t.Errorf("Expected D for a weak winless career, got %s", g)
	}
}

func TestValidate(t *testing.T) {
	caps := Stats{Speed: 105, Stamina: 105, Power: 105}
	c := NewCompetitor("p1", "Test", "ember", Stats{Speed: 20, Stamina: 20, Power: 20})
	if err := c.Validate(caps); err != nil {
		t.Errorf("Valid competitor failed validation: %v", err)
	}

	c.Stats.Speed = 300 // bypassing the mutator on purpose
	if err := c.Validate(caps); err == nil {
		t.Error("Expected validation failure for out-of-cap stat")
	}
}
