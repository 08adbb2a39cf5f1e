package breed

import (
	"testing"

	"github.com/ilyakav/turfline/internal/career"
)

func validBreed(id string) Breed {
	return Breed{
		ID:   id,
		Name: "Test " + id,
		Caps: career.Stats{Speed: 100, Stamina: 100, Power: 100},
		Growth: Growth{
			Speed:   GradeB,
			Stamina: GradeC,
			Power:   GradeC,
		},
		PreferredStrategy: "mid",
	}
}

func TestNewCatalogueValidation(t *testing.T) {
	if _, err := NewCatalogue(nil); err == nil {
		t.Error("Expected error for empty catalogue")
	}

	noID := validBreed("x")
	noID.ID = ""
	if _, err := NewCatalogue([]Breed{noID}); err == nil {
		t.Error("Expected error for breed without id")
	}

	if _, err := NewCatalogue([]Breed{validBreed("a"), validBreed("a")}); err == nil {
		t.Error("Expected error for duplicate id")
	}

	badCap := validBreed("a")
	badCap.Caps.Power = 0
	if _, err := NewCatalogue([]Breed{badCap}); err == nil {
		t.Error("Expected error for cap below 1")
	}

	badGrade := validBreed("a")
	badGrade.Growth.Speed = "Z"
	if _, err := NewCatalogue([]Breed{badGrade}); err == nil {
		t.Error("Expected error for unknown growth grade")
	}
}

func TestCatalogueLookup(t *testing.T) {
	cat, err := NewCatalogue([]Breed{validBreed("b"), validBreed("a")})
	if err != nil {
		t.Fatalf("NewCatalogue() failed: %v", err)
	}

	if _, err := cat.Get("a"); err != nil {
		t.Errorf("Get(a) failed: %v", err)
	}
	if _, err := cat.Get("missing"); err == nil {
		t.Error("Expected error for unknown breed id")
	}

	ids := cat.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Expected sorted ids [a b], got %v", ids)
	}
}

func TestEmbeddedDefaultCatalogue(t *testing.T) {
	cat, err := parse(defaultBreedsYAML, "embedded default")
	if err != nil {
		t.Fatalf("Embedded catalogue failed to parse: %v", err)
	}
	if len(cat.All()) < 2 {
		t.Errorf("Expected at least 2 default breeds, got %d", len(cat.All()))
	}
	for _, b := range cat.All() {
		if b.Name == "" || b.Description == "" {
			t.Errorf("Breed %s missing name or description", b.ID)
		}
	}
}

func TestGrowthMultipliersMonotonic(t *testing.T) {
	order := []GrowthGrade{GradeG, GradeF, GradeE, GradeD, GradeC, GradeB, GradeA, GradeS}
	for i := 1; i < len(order); i++ {
		lo, hi := order[i-1].Multiplier(), order[i].Multiplier()
		if lo >= hi {
			t.Errorf("Grade %s multiplier %.2f not below %s multiplier %.2f",
				order[i-1], lo, order[i], hi)
		}
	}
	if GradeC.Multiplier() != 1.0 {
		t.Errorf("Grade C must be neutral, got %.2f", GradeC.Multiplier())
	}
}

func TestFormMultiplier(t *testing.T) {
	if FormMultiplier(career.MoodBad) >= FormMultiplier(career.MoodNormal) {
		t.Error("Bad mood must train worse than Normal")
	}
	if FormMultiplier(career.MoodNormal) != 1.0 {
		t.Error("Normal mood must be neutral")
	}
	if FormMultiplier(career.MoodExcellent) != 1.3 {
		t.Errorf("Expected 1.3 for Excellent, got %.2f", FormMultiplier(career.MoodExcellent))
	}
}

func TestBondMultiplierSteps(t *testing.T) {
	cases := []struct {
		bond int
		want float64
	}{
		{0, 1.0},
		{19, 1.0},
		{20, 1.05},
		{40, 1.1},
		{59, 1.1},
		{60, 1.15},
		{80, 1.2},
		{100, 1.2},
	}
	for _, tc := range cases {
		if got := BondMultiplier(tc.bond); got != tc.want {
			t.Errorf("BondMultiplier(%d) = %.2f, want %.2f", tc.bond, got, tc.want)
		}
	}
}

func TestPreferredStrategy(t *testing.T) {
	b := validBreed("a")

	b.PreferredStrategy = "front"
	if b.Preferred() != career.StrategyFront {
		t.Error("Expected front strategy")
	}
	b.PreferredStrategy = "late"
	if b.Preferred() != career.StrategyLate {
		t.Error("Expected late strategy")
	}
	b.PreferredStrategy = "something-else"
	if b.Preferred() != career.StrategyMid {
		t.Error("Unknown strategy hint must default to mid")
	}
}
