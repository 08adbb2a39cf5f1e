package career

import "fmt"

// Record is the career bookkeeping for one competitor.
// Turn is 1-based and only ever advances; Turn == MaxTurns+1 marks a career
// that has just ended.
type Record struct {
	Turn                  int
	MaxTurns              int
	RacesRun              int
	RacesWon              int
	TotalTrainingSessions int
}

// NewRecord creates a record positioned at turn 1 of a maxTurns career.
func NewRecord(maxTurns int) *Record {
	return &Record{Turn: 1, MaxTurns: maxTurns}
}

// AdvanceTurn moves the career forward by exactly one turn.
// Advancing past MaxTurns+1 is a caller bug.
func (r *Record) AdvanceTurn() error {
	if r.Turn > r.MaxTurns {
		return fmt.Errorf("career: turn %d already past max %d", r.Turn, r.MaxTurns)
	}
	r.Turn++
	return nil
}

// Over reports whether the career has ended.
func (r *Record) Over() bool {
	return r.Turn > r.MaxTurns
}

// RecordRace notes a completed race and whether it was won.
func (r *Record) RecordRace(won bool) {
	r.RacesRun++
	if won {
		r.RacesWon++
	}
}

// Grade is the end-of-career rating.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// FinalGrade rates the finished career from race results and final stats.
// Wins dominate; a strong stat total can lift a winless career out of D.
func FinalGrade(rec *Record, final Stats) Grade {
	score := 0
	if rec.RacesRun > 0 {
		score += 60 * rec.RacesWon / rec.RacesRun
	}
	score += final.Total() / 12
	switch {
	case score >= 75:
		return GradeS
	case score >= 55:
		return GradeA
	case score >= 40:
		return GradeB
	case score >= 25:
		return GradeC
	default:
		return GradeD
	}
}
