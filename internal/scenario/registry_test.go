package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "sprint", "stayer"} {
		if !Exists(id) {
			t.Errorf("Expected builtin scenario %q", id)
		}
		s, err := Get(id)
		if err != nil {
			t.Errorf("Get(%s) failed: %v", id, err)
			continue
		}
		if err := s.Validate(); err != nil {
			t.Errorf("Builtin %s fails its own validation: %v", id, err)
		}
	}

	if Exists("nope") {
		t.Error("Unregistered id must not exist")
	}
	if _, err := Get("nope"); err == nil {
		t.Error("Expected error for unknown scenario")
	}
}

func TestListSortedWithCounts(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("Expected at least the 3 builtins, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Errorf("List not sorted: %s before %s", infos[i-1].ID, infos[i].ID)
		}
	}
	classic, err := Get("classic")
	if err != nil {
		t.Fatalf("Get(classic) failed: %v", err)
	}
	for _, info := range infos {
		if info.ID == "classic" && info.Races != len(classic.Races) {
			t.Errorf("classic race count %d, want %d", info.Races, len(classic.Races))
		}
	}
}

func validScenario() Scenario {
	return Scenario{
		ID:        "valid",
		Name:      "Valid",
		MaxTurns:  10,
		BaseStats: career.Stats{Speed: 20, Stamina: 20, Power: 20},
		Races: []schedule.Race{
			{Turn: 5, ID: "r1", Name: "R1", Category: schedule.CategoryMile, DistanceM: 1600, FieldSize: 8},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validScenario().Validate(); err != nil {
		t.Errorf("Valid scenario rejected: %v", err)
	}

	noID := validScenario()
	noID.ID = ""
	if err := noID.Validate(); err == nil {
		t.Error("Expected error for missing id")
	}

	noTurns := validScenario()
	noTurns.MaxTurns = 0
	if err := noTurns.Validate(); err == nil {
		t.Error("Expected error for zero turns")
	}

	badBase := validScenario()
	badBase.BaseStats.Power = 0
	if err := badBase.Validate(); err == nil {
		t.Error("Expected error for base stat below 1")
	}

	badRace := validScenario()
	badRace.Races[0].Turn = 20 // past career end
	if err := badRace.Validate(); err == nil {
		t.Error("Expected error for race past career end")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	preset := `id: custom-season
name: Custom Season
description: A test preset.
max_turns: 8
base_stats:
  speed: 22
  stamina: 20
  power: 18
races:
  - turn: 4
    id: custom-open
    name: Custom Open
    category: sprint
    distance_m: 1200
    field_size: 6
  - turn: 8
    id: custom-final
    name: Custom Final
    category: mile
    distance_m: 1600
    field_size: 8
`
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}

	id, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if id != "custom-season" {
		t.Errorf("Expected id custom-season, got %s", id)
	}
	if !Exists(id) {
		t.Error("Loaded scenario must be registered")
	}

	s, _ := Get(id)
	if s.MaxTurns != 8 || len(s.Races) != 2 {
		t.Errorf("Loaded scenario mismatch: %d turns, %d races", s.MaxTurns, len(s.Races))
	}

	// Re-loading the same id must be rejected, not panic
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error loading a duplicate scenario id")
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("id: [broken"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}
