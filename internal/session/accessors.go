package session

import (
	"errors"
	"fmt"

	"github.com/ilyakav/turfline/internal/breed"
	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/flow"
	"github.com/ilyakav/turfline/internal/race"
	"github.com/ilyakav/turfline/internal/scenario"
	"github.com/ilyakav/turfline/internal/schedule"
	"github.com/ilyakav/turfline/internal/training"
)

// State returns the current flow state.
func (s *Session) State() flow.State {
	return s.machine.Current()
}

// ValidInputs returns the sorted tokens accepted in the current state.
func (s *Session) ValidInputs() []string {
	return s.machine.ValidInputs(s.machine.Current())
}

// AllowedTransitions returns the sorted transition set of a state.
func (s *Session) AllowedTransitions(st flow.State) []flow.State {
	return s.machine.AllowedTransitions(st)
}

// HandleInput feeds one raw input token through the flow machine.
// Player-recoverable errors (unrecognized input) become an on-screen notice
// and a nil return; anything else is a real failure.
func (s *Session) HandleInput(raw string) error {
	err := s.machine.ProcessInput(raw)
	if err == nil {
		return nil
	}
	var unrecognized *flow.UnrecognizedInputError
	if errors.As(err, &unrecognized) {
		s.notice = fmt.Sprintf("Unknown input %q. Valid: %v", unrecognized.Token, unrecognized.Valid)
		return nil
	}
	return err
}

// FinishPlayback moves from the running race to the results screen once the
// presentation layer has drained the replay.
func (s *Session) FinishPlayback() error {
	if s.machine.Current() != StateRaceRunning {
		return fmt.Errorf("session: no race running")
	}
	return s.machine.TransitionTo(StateRaceResults)
}

// Notice returns the pending player-facing message, if any.
func (s *Session) Notice() string {
	return s.notice
}

// ClearNotice drops the pending message once rendered.
func (s *Session) ClearNotice() {
	s.notice = ""
}

// Breeds returns the injected breed catalogue.
func (s *Session) Breeds() *breed.Catalogue {
	return s.breeds
}

// Scenario returns the career preset in play.
func (s *Session) Scenario() scenario.Scenario {
	return s.cfg.Scenario
}

// Competitor returns the player's competitor, nil before career start.
func (s *Session) Competitor() *career.Competitor {
	return s.comp
}

// Record returns the career record, nil before career start.
func (s *Session) Record() *career.Record {
	return s.rec
}

// Schedule returns the race schedule, nil before career start.
func (s *Session) Schedule() *schedule.Schedule {
	return s.sched
}

// LastTraining returns the most recent training result, if any.
func (s *Session) LastTraining() *training.Result {
	return s.lastTraining
}

// PendingRace returns the race awaiting its start, if any.
func (s *Session) PendingRace() *schedule.Race {
	return s.pendingRace
}

// PendingField returns the field built for the pending race.
func (s *Session) PendingField() []race.Entrant {
	return s.pendingField
}

// Playback returns the active race replay, nil outside RaceRunning.
func (s *Session) Playback() *race.Playback {
	return s.playback
}

// LastOutcome returns the most recent race outcome, if any.
func (s *Session) LastOutcome() *race.Outcome {
	return s.lastOutcome
}

// ResultsLog returns every consumed outcome of the career, in order.
func (s *Session) ResultsLog() []race.Outcome {
	return s.resultsLog
}

// TutorialPage returns the current tutorial page, 0-based.
func (s *Session) TutorialPage() int {
	return s.tutorialPage
}

// Grade returns the career grade for the current record and stats.
func (s *Session) Grade() career.Grade {
	if s.rec == nil || s.comp == nil {
		return career.GradeD
	}
	return career.FinalGrade(s.rec, s.comp.Stats)
}

// Snapshot captures the career for saving. Only a career between turns
// (training screen, no race pending) can be snapshotted.
func (s *Session) Snapshot() (career.Snapshot, error) {
	if s.comp == nil || s.rec == nil {
		return career.Snapshot{}, fmt.Errorf("session: no career to save")
	}
	if s.machine.Current() != StateTraining {
		return career.Snapshot{}, fmt.Errorf("session: can only save from the training screen")
	}
	return career.TakeSnapshot(s.comp, s.rec, s.sched.Completed()), nil
}
