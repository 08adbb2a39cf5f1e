package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilyakav/turfline/internal/session"
	"github.com/ilyakav/turfline/internal/storage"
)

// Model is the Bubble Tea model for one career session.
type Model struct {
	sess   *session.Session
	store  *storage.Store
	keys   *KeyMapper
	width  int
	height int

	quitting    bool
	careerSaved bool
	fatal       error
}

// NewModel creates the career model. store may be nil (records and saves
// are then skipped).
func NewModel(sess *session.Session, store *storage.Store, width, height int) Model {
	return Model{
		sess:   sess,
		store:  store,
		keys:   NewKeyMapper(),
		width:  width,
		height: height,
	}
}

// Init starts the model. Resumed sessions land directly on the training
// screen; nothing to kick off until a race runs.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps the key to a flow token and feeds it to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	token, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	}

	wasRunning := m.sess.State() == session.StateRaceRunning

	if err := m.sess.HandleInput(token); err != nil {
		m.fatal = err
		m.quitting = true
		return m, tea.Quit
	}

	m.saveIfComplete()

	// A race just started: begin the playback tick loop.
	if !wasRunning && m.sess.State() == session.StateRaceRunning {
		return m, tickCmd()
	}
	return m, nil
}

// handleTick advances the race replay one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sess.State() != session.StateRaceRunning {
		return m, nil
	}

	pb := m.sess.Playback()
	if pb == nil {
		return m, nil
	}

	pb.Advance()
	if pb.Done() {
		if err := m.sess.FinishPlayback(); err != nil {
			m.fatal = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, tickCmd()
}

// saveIfComplete persists the finished career once.
func (m *Model) saveIfComplete() {
	if m.careerSaved || m.store == nil {
		return
	}
	if m.sess.State() != session.StateCareerComplete {
		return
	}
	comp := m.sess.Competitor()
	rec := m.sess.Record()
	if comp == nil || rec == nil {
		return
	}

	careerID, err := m.store.SaveCareer(storage.CareerEntry{
		ScenarioID: m.sess.Scenario().ID,
		HorseName:  comp.Name,
		BreedID:    comp.BreedID,
		Grade:      string(m.sess.Grade()),
		RacesRun:   rec.RacesRun,
		RacesWon:   rec.RacesWon,
		Speed:      comp.Stats.Speed,
		Stamina:    comp.Stats.Stamina,
		Power:      comp.Stats.Power,
	})
	if err != nil {
		// Best-effort: the summary screen still renders.
		return
	}
	for _, outcome := range m.sess.ResultsLog() {
		res := outcome.PlayerResult()
		//nolint:errcheck // Best-effort save alongside the career row
		m.store.SaveRaceResult(storage.RaceEntry{
			CareerID:  careerID,
			RaceID:    outcome.Race.ID,
			RaceName:  outcome.Race.Name,
			Rank:      res.Rank,
			FieldSize: len(outcome.Results),
			TimeSecs:  res.TimeSecs,
		})
	}
	//nolint:errcheck // The finished career supersedes any mid-career save
	m.store.DeleteSave(m.sess.Scenario().ID)
	m.careerSaved = true
}

// autosave stores a mid-career snapshot when quitting from the training
// screen, so `turfline play --resume` can pick the career back up.
func (m *Model) autosave() {
	if m.store == nil {
		return
	}
	snap, err := m.sess.Snapshot()
	if err != nil {
		return // not in a saveable spot
	}
	data, err := snap.Encode()
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.PutSave(m.sess.Scenario().ID, data)
}

// View renders the current flow state.
func (m Model) View() string {
	if m.quitting {
		if m.fatal != nil {
			return fmt.Sprintf("turfline: %v\n", m.fatal)
		}
		return ""
	}
	return m.renderState()
}

// Run starts the Bubble Tea program for a session.
func Run(sess *session.Session, store *storage.Store, width, height int) error {
	model := NewModel(sess, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// NewSeed returns a time-based seed for careers without an explicit one.
func NewSeed() int64 {
	return time.Now().UnixNano()
}
