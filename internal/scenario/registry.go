// Package scenario provides career presets: career length, base starting
// stats, and the fixed race schedule. Built-in scenarios register themselves
// in init(), letting the CLI discover and instantiate careers without
// hardcoded dependencies.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/schedule"
)

// Scenario is one career preset.
type Scenario struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	MaxTurns    int             `yaml:"max_turns"`
	BaseStats   career.Stats    `yaml:"base_stats"`
	Races       []schedule.Race `yaml:"races"`
}

// NewSchedule builds a validated schedule from the scenario's race list.
func (s Scenario) NewSchedule() (*schedule.Schedule, error) {
	return schedule.New(s.Races, s.MaxTurns)
}

// Validate checks the preset is internally consistent.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario: preset %q has no id", s.Name)
	}
	if s.MaxTurns < 1 {
		return fmt.Errorf("scenario %s: max turns %d below 1", s.ID, s.MaxTurns)
	}
	for _, st := range career.AllStats {
		if s.BaseStats.Get(st) < 1 {
			return fmt.Errorf("scenario %s: base %s %d below 1", s.ID, st, s.BaseStats.Get(st))
		}
	}
	if _, err := s.NewSchedule(); err != nil {
		return err
	}
	return nil
}

// Info is the listing metadata for a registered scenario.
type Info struct {
	ID          string
	Name        string
	Description string
	MaxTurns    int
	Races       int
}

var (
	registry = make(map[string]Scenario)
	mu       sync.RWMutex
)

// Register adds a scenario to the registry.
// Called from init() for built-ins and from LoadFile for custom presets.
// Panics on duplicate IDs - that is a wiring bug, not a runtime condition.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[s.ID]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", s.ID))
	}
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("scenario: invalid preset: %v", err))
	}
	registry[s.ID] = s
}

// List returns metadata for all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(registry))
	for _, s := range registry {
		out = append(out, Info{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			MaxTurns:    s.MaxTurns,
			Races:       len(s.Races),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the scenario for an ID.
func Get(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registry[id]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario: unknown id %q", id)
	}
	return s, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[id]
	return ok
}
