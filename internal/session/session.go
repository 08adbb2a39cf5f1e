// Package session wires the career flow machine to the training engine,
// race scheduler, and race simulator. It owns the competitor and career
// record, threads them through the engines, and is the single place that
// decides whether an engine error is surfaced to the player or swallowed as
// a stay-in-state notice.
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ilyakav/turfline/internal/breed"
	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/flow"
	"github.com/ilyakav/turfline/internal/race"
	"github.com/ilyakav/turfline/internal/scenario"
	"github.com/ilyakav/turfline/internal/schedule"
	"github.com/ilyakav/turfline/internal/training"
)

// PlaybackFrames is the default frame count for race playback pacing.
const PlaybackFrames = 120

// TutorialPages is the number of tutorial screens.
const TutorialPages = 4

// Config configures a new career session.
type Config struct {
	Scenario   scenario.Scenario
	Breeds     *breed.Catalogue
	PlayerName string
	Seed       int64

	// Resume restores a career in progress instead of starting fresh.
	Resume *career.Snapshot
}

// Session is one player's career from main menu to graded summary.
// It is single-threaded; all methods run to completion.
type Session struct {
	cfg     Config
	machine *flow.Machine
	rng     *rand.Rand

	breeds *breed.Catalogue
	sched  *schedule.Schedule
	engine *training.Engine
	sim    *race.Simulator

	comp *career.Competitor
	rec  *career.Record

	notice       string
	lastTraining *training.Result
	helpReturn   flow.State
	tutorialPage int

	pendingRace  *schedule.Race
	pendingField []race.Entrant
	playback     *race.Playback
	lastOutcome  *race.Outcome
	resultsLog   []race.Outcome

	careerSeq int // competitor id sequence within this session
}

// New creates a session at the main menu, or resumed mid-career when
// cfg.Resume is set.
func New(cfg Config) (*Session, error) {
	if cfg.Breeds == nil {
		return nil, fmt.Errorf("session: breed catalogue is required")
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		breeds: cfg.Breeds,
	}
	s.sim = race.NewSimulator(s.rng)

	initial := StateMainMenu
	if cfg.Resume != nil {
		initial = StateTraining
	}

	machine, err := flow.NewMachine(initial, stateTable())
	if err != nil {
		return nil, err
	}
	s.machine = machine
	s.registerHandlers()
	s.machine.RegisterAutoCheck(StateTraining, s.careerOverCheck)

	if cfg.Resume != nil {
		if err := s.restore(*cfg.Resume); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Session) registerHandlers() {
	m := s.machine

	m.RegisterHandler(actStartCareer, func() (flow.State, error) {
		return StateCharacterSetup, nil
	})
	m.RegisterHandler(actOpenTutorial, func() (flow.State, error) {
		s.tutorialPage = 0
		return StateTutorial, nil
	})
	m.RegisterHandler(actTutorialNext, func() (flow.State, error) {
		s.tutorialPage++
		if s.tutorialPage >= TutorialPages {
			return StateMainMenu, nil
		}
		return StateTutorial, nil
	})
	m.RegisterHandler(actTutorialBack, func() (flow.State, error) {
		return StateMainMenu, nil
	})
	m.RegisterHandler(actOpenHelp, func() (flow.State, error) {
		s.helpReturn = s.machine.Current()
		return StateHelp, nil
	})
	m.RegisterHandler(actCloseHelp, func() (flow.State, error) {
		if s.helpReturn == "" {
			return StateMainMenu, nil
		}
		return s.helpReturn, nil
	})
	m.RegisterHandler(actBackToMenu, func() (flow.State, error) {
		return StateMainMenu, nil
	})

	m.RegisterHandler(actPickBreed1, s.pickBreedHandler(0))
	m.RegisterHandler(actPickBreed2, s.pickBreedHandler(1))
	m.RegisterHandler(actPickBreed3, s.pickBreedHandler(2))
	m.RegisterHandler(actPickBreed4, s.pickBreedHandler(3))

	m.RegisterHandler(actTrainSpeed, s.trainHandler(training.KindSpeed))
	m.RegisterHandler(actTrainStamina, s.trainHandler(training.KindStamina))
	m.RegisterHandler(actTrainPower, s.trainHandler(training.KindPower))
	m.RegisterHandler(actTrainRest, s.trainHandler(training.KindRest))
	m.RegisterHandler(actTrainMedia, s.trainHandler(training.KindMedia))

	m.RegisterHandler(actToLineup, func() (flow.State, error) {
		if s.pendingRace == nil {
			return "", fmt.Errorf("session: no race pending")
		}
		field, err := s.sim.BuildField(s.playerEntrant(), *s.pendingRace)
		if err != nil {
			return "", err
		}
		s.pendingField = field
		return StateFieldLineup, nil
	})
	m.RegisterHandler(actToStrategy, func() (flow.State, error) {
		return StateStrategySelect, nil
	})

	m.RegisterHandler(actPickFront, s.strategyHandler(career.StrategyFront))
	m.RegisterHandler(actPickMid, s.strategyHandler(career.StrategyMid))
	m.RegisterHandler(actPickLate, s.strategyHandler(career.StrategyLate))

	m.RegisterHandler(actSkipPlayback, func() (flow.State, error) {
		if s.playback != nil {
			s.playback.Skip()
		}
		return StateRaceRunning, nil
	})

	m.RegisterHandler(actConsumeResult, func() (flow.State, error) {
		if s.lastOutcome == nil {
			return "", fmt.Errorf("session: no race outcome to consume")
		}
		if err := s.sched.MarkCompleted(); err != nil {
			return "", err
		}
		s.rec.RecordRace(s.lastOutcome.Won())
		s.resultsLog = append(s.resultsLog, *s.lastOutcome)
		s.pendingRace = nil
		s.pendingField = nil
		s.playback = nil
		return StateTraining, nil
	})

	m.RegisterHandler(actNewCareer, func() (flow.State, error) {
		s.reset()
		return StateMainMenu, nil
	})
}

// pickBreedHandler starts the career with the catalogue's idx-th breed.
func (s *Session) pickBreedHandler(idx int) flow.Handler {
	return func() (flow.State, error) {
		ids := s.breeds.IDs()
		if idx >= len(ids) {
			s.notice = "No such stable entry."
			return StateCharacterSetup, nil
		}
		if err := s.startCareer(ids[idx]); err != nil {
			return "", err
		}
		return StateTraining, nil
	}
}

// startCareer builds the competitor, record, schedule, and engine for a
// fresh career with the given breed.
func (s *Session) startCareer(breedID string) error {
	b, err := s.breeds.Get(breedID)
	if err != nil {
		return err
	}
	sched, err := s.cfg.Scenario.NewSchedule()
	if err != nil {
		return err
	}

	name := s.cfg.PlayerName
	if name == "" {
		name = b.Name
	}
	s.careerSeq++
	start := career.Stats{
		Speed:   s.cfg.Scenario.BaseStats.Speed + b.StartBonus.Speed,
		Stamina: s.cfg.Scenario.BaseStats.Stamina + b.StartBonus.Stamina,
		Power:   s.cfg.Scenario.BaseStats.Power + b.StartBonus.Power,
	}
	s.comp = career.NewCompetitor(fmt.Sprintf("player-%d", s.careerSeq), name, breedID, start)
	s.comp.Strategy = b.Preferred()
	s.rec = career.NewRecord(s.cfg.Scenario.MaxTurns)
	s.sched = sched
	s.engine = training.NewEngine(s.breeds, sched, s.rng)
	s.resultsLog = nil
	s.lastTraining = nil
	s.notice = ""
	return nil
}

// trainHandler applies one training action. Insufficient energy is a
// player-facing notice and a stay; anything else is a wiring error.
func (s *Session) trainHandler(kind training.Kind) flow.Handler {
	return func() (flow.State, error) {
		res, err := s.engine.Apply(s.comp, s.rec, kind)
		if err != nil {
			var insufficient *training.InsufficientEnergyError
			if errors.As(err, &insufficient) {
				s.notice = fmt.Sprintf(
					"Not enough energy (%d/%d). Try rest or media day.",
					insufficient.Remaining, insufficient.Required,
				)
				return StateTraining, nil
			}
			return "", err
		}
		s.notice = ""
		s.lastTraining = &res
		if res.RaceDue != nil {
			s.pendingRace = res.RaceDue
			return StateRacePreview, nil
		}
		return StateTraining, nil
	}
}

// strategyHandler locks the running style and runs the race simulation.
// The outcome is final before playback starts.
func (s *Session) strategyHandler(strat career.Strategy) flow.Handler {
	return func() (flow.State, error) {
		if s.pendingRace == nil || len(s.pendingField) == 0 {
			return "", fmt.Errorf("session: no field to race")
		}
		s.comp.Strategy = strat
		s.pendingField[0].Strategy = strat

		outcome, err := s.sim.Run(*s.pendingRace, s.pendingField)
		if err != nil {
			return "", err
		}
		s.lastOutcome = &outcome
		s.playback = race.NewPlayback(outcome, PlaybackFrames)
		return StateRaceRunning, nil
	}
}

// playerEntrant builds the player's race entry from current stats.
func (s *Session) playerEntrant() race.Entrant {
	return race.Entrant{
		ID:       s.comp.ID,
		Name:     s.comp.Name,
		Stats:    s.comp.Stats,
		Strategy: s.comp.Strategy,
		IsPlayer: true,
	}
}

// careerOverCheck forces CareerComplete once the turn counter has passed
// the final turn. Idempotent: it fires at most once per career because
// CareerComplete has no path back to Training.
func (s *Session) careerOverCheck() (flow.State, bool) {
	if s.rec != nil && s.rec.Over() {
		return StateCareerComplete, true
	}
	return "", false
}

// reset clears career state after returning to the main menu.
func (s *Session) reset() {
	s.comp = nil
	s.rec = nil
	s.sched = nil
	s.engine = nil
	s.notice = ""
	s.lastTraining = nil
	s.pendingRace = nil
	s.pendingField = nil
	s.playback = nil
	s.lastOutcome = nil
	s.resultsLog = nil
}

// restore rebuilds mid-career state from a snapshot.
func (s *Session) restore(snap career.Snapshot) error {
	comp, rec := snap.Restore()
	if rec.MaxTurns != s.cfg.Scenario.MaxTurns {
		return fmt.Errorf("session: snapshot career length %d does not match scenario %s", rec.MaxTurns, s.cfg.Scenario.ID)
	}
	b, err := s.breeds.Get(comp.BreedID)
	if err != nil {
		return err
	}
	if err := comp.Validate(b.Caps); err != nil {
		return err
	}
	sched, err := s.cfg.Scenario.NewSchedule()
	if err != nil {
		return err
	}
	if err := sched.RestoreCompleted(snap.RacesCompleted); err != nil {
		return err
	}
	s.comp = comp
	s.rec = rec
	s.sched = sched
	s.engine = training.NewEngine(s.breeds, sched, s.rng)
	return nil
}
