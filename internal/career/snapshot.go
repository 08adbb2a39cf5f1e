package career

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Snapshot is the flat, versioned save record for a career in progress.
// The core only encodes and decodes; where the bytes go is the caller's
// concern.
type Snapshot struct {
	Version int `yaml:"version"`

	CompetitorID string `yaml:"competitor_id"`
	Name         string `yaml:"name"`
	BreedID      string `yaml:"breed_id"`
	Speed        int    `yaml:"speed"`
	Stamina      int    `yaml:"stamina"`
	Power        int    `yaml:"power"`
	Energy       int    `yaml:"energy"`
	Health       int    `yaml:"health"`
	Bond         int    `yaml:"bond"`
	Strategy     int    `yaml:"strategy"`

	Turn             int `yaml:"turn"`
	MaxTurns         int `yaml:"max_turns"`
	RacesRun         int `yaml:"races_run"`
	RacesWon         int `yaml:"races_won"`
	TrainingSessions int `yaml:"training_sessions"`
	RacesCompleted   int `yaml:"races_completed"`
}

// TakeSnapshot captures a competitor and record into a flat save record.
// racesCompleted is the scheduler's completed-event count.
func TakeSnapshot(c *Competitor, rec *Record, racesCompleted int) Snapshot {
	return Snapshot{
		Version:          SnapshotVersion,
		CompetitorID:     c.ID,
		Name:             c.Name,
		BreedID:          c.BreedID,
		Speed:            c.Stats.Speed,
		Stamina:          c.Stats.Stamina,
		Power:            c.Stats.Power,
		Energy:           c.Condition.Energy,
		Health:           c.Condition.Health,
		Bond:             c.Bond,
		Strategy:         int(c.Strategy),
		Turn:             rec.Turn,
		MaxTurns:         rec.MaxTurns,
		RacesRun:         rec.RacesRun,
		RacesWon:         rec.RacesWon,
		TrainingSessions: rec.TotalTrainingSessions,
		RacesCompleted:   racesCompleted,
	}
}

// Restore rebuilds the competitor and record described by the snapshot.
func (s Snapshot) Restore() (*Competitor, *Record) {
	c := &Competitor{
		ID:      s.CompetitorID,
		Name:    s.Name,
		BreedID: s.BreedID,
		Stats:   Stats{Speed: s.Speed, Stamina: s.Stamina, Power: s.Power},
		Condition: Condition{
			Energy: s.Energy,
			Health: s.Health,
			Mood:   MoodFor(s.Energy, s.Health),
		},
		Strategy: Strategy(s.Strategy),
		Bond:     s.Bond,
	}
	rec := &Record{
		Turn:                  s.Turn,
		MaxTurns:              s.MaxTurns,
		RacesRun:              s.RacesRun,
		RacesWon:              s.RacesWon,
		TotalTrainingSessions: s.TrainingSessions,
	}
	return c, rec
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	return yaml.Marshal(s)
}

// DecodeSnapshot parses a snapshot, rejecting unknown versions.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("career: cannot decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("career: unsupported snapshot version %d", s.Version)
	}
	return s, nil
}
