package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

func init() {
	Register(Scenario{
		ID:          "classic",
		Name:        "Classic Season",
		Description: "A full season: two prep races building to the Crown Mile.",
		MaxTurns:    24,
		BaseStats:   career.Stats{Speed: 20, Stamina: 20, Power: 20},
		Races: []schedule.Race{
			{Turn: 6, ID: "maiden", Name: "Maiden Stakes", Category: schedule.CategorySprint, DistanceM: 1200, FieldSize: 8},
			{Turn: 12, ID: "harbor-cup", Name: "Harbor Cup", Category: schedule.CategoryMile, DistanceM: 1600, FieldSize: 9},
			{Turn: 18, ID: "autumn-trial", Name: "Autumn Trial", Category: schedule.CategoryMile, DistanceM: 1800, FieldSize: 9},
			{Turn: 24, ID: "crown-mile", Name: "Crown Mile", Category: schedule.CategoryMile, DistanceM: 1600, FieldSize: 10},
		},
	})

	Register(Scenario{
		ID:          "sprint",
		Name:        "Sprint Circuit",
		Description: "A short, fast campaign over dash distances.",
		MaxTurns:    12,
		BaseStats:   career.Stats{Speed: 24, Stamina: 16, Power: 22},
		Races: []schedule.Race{
			{Turn: 4, ID: "gate-dash", Name: "Gate Dash", Category: schedule.CategorySprint, DistanceM: 1000, FieldSize: 7},
			{Turn: 8, ID: "river-sprint", Name: "River Sprint", Category: schedule.CategorySprint, DistanceM: 1200, FieldSize: 8},
			{Turn: 12, ID: "final-furlong", Name: "Final Furlong", Category: schedule.CategorySprint, DistanceM: 1200, FieldSize: 10},
		},
	})

	Register(Scenario{
		ID:          "stayer",
		Name:        "Stayer's Road",
		Description: "Long preparation, long races. Stamina wins here.",
		MaxTurns:    24,
		BaseStats:   career.Stats{Speed: 18, Stamina: 26, Power: 18},
		Races: []schedule.Race{
			{Turn: 8, ID: "hill-trial", Name: "Hill Trial", Category: schedule.CategoryMile, DistanceM: 1800, FieldSize: 8},
			{Turn: 16, ID: "valley-stayers", Name: "Valley Stayers", Category: schedule.CategoryDistance, DistanceM: 2400, FieldSize: 9},
			{Turn: 24, ID: "grand-route", Name: "Grand Route", Category: schedule.CategoryDistance, DistanceM: 3000, FieldSize: 10},
		},
	})
}

// LoadFile registers a custom scenario from a YAML preset file.
// Returns the registered scenario's ID.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("scenario: cannot read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("scenario: cannot parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	if Exists(s.ID) {
		return "", fmt.Errorf("scenario: %q already registered", s.ID)
	}
	Register(s)
	return s.ID, nil
}
