package career

// Energy and health share the same 0-100 scale.
const (
	MaxEnergy = 100
	MaxHealth = 100
)

// Mood is the derived qualitative form of a competitor.
// It is an ordered scale: higher is better.
type Mood int

const (
	MoodBad Mood = iota
	MoodTired
	MoodNormal
	MoodGood
	MoodGreat
	MoodExcellent
)

// String returns a human-readable name for the mood.
func (m Mood) String() string {
	switch m {
	case MoodBad:
		return "Bad"
	case MoodTired:
		return "Tired"
	case MoodNormal:
		return "Normal"
	case MoodGood:
		return "Good"
	case MoodGreat:
		return "Great"
	case MoodExcellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// Condition tracks the volatile state of a competitor between turns.
// Mood is always a pure function of energy and health; it is recomputed by
// the mutators on Competitor and must not be written directly.
type Condition struct {
	Energy int
	Health int
	Mood   Mood
}

// MoodFor derives the mood from energy and health. The lower of the two
// drives the result so a healthy but exhausted horse still reads as tired.
func MoodFor(energy, health int) Mood {
	v := energy
	if health < v {
		v = health
	}
	switch {
	case v >= 90:
		return MoodExcellent
	case v >= 75:
		return MoodGreat
	case v >= 55:
		return MoodGood
	case v >= 35:
		return MoodNormal
	case v >= 15:
		return MoodTired
	default:
		return MoodBad
	}
}
