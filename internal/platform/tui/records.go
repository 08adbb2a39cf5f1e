package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ilyakav/turfline/internal/scenario"
	"github.com/ilyakav/turfline/internal/storage"
)

const maxRecordRows = 100

// RecordsKeyMap defines the key bindings for the records browser.
type RecordsKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextScenario key.Binding
	PrevScenario key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScenario, k.PrevScenario, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextScenario, k.PrevScenario, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScenario: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		PrevScenario: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel browses finished careers per scenario.
type RecordsModel struct {
	store     *storage.Store
	scenarios []scenario.Info
	selected  int
	table     table.Model
	keys      RecordsKeyMap
	help      help.Model
	best      string
	err       error
	quitting  bool
}

// NewRecordsModel creates the records browser over all registered
// scenarios.
func NewRecordsModel(store *storage.Store) RecordsModel {
	m := RecordsModel{
		store:     store,
		scenarios: scenario.List(),
		keys:      DefaultRecordsKeyMap(),
		help:      help.New(),
	}

	columns := []table.Column{
		{Title: "Horse", Width: 20},
		{Title: "Breed", Width: 8},
		{Title: "Grade", Width: 5},
		{Title: "Races", Width: 5},
		{Title: "Wins", Width: 4},
		{Title: "Stats", Width: 12},
		{Title: "Date", Width: 16},
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("13")).Bold(true)
	m.table.SetStyles(styles)

	m.reload()
	return m
}

// reload fills the table with the selected scenario's careers.
func (m *RecordsModel) reload() {
	if len(m.scenarios) == 0 || m.store == nil {
		return
	}
	id := m.scenarios[m.selected].ID

	entries, err := m.store.TopCareers(id, maxRecordRows)
	if err != nil {
		m.err = err
		return
	}
	best, err := m.store.BestGrade(id)
	if err != nil {
		m.err = err
		return
	}
	m.best = best

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.HorseName,
			e.BreedID,
			e.Grade,
			fmt.Sprintf("%d", e.RacesRun),
			fmt.Sprintf("%d", e.RacesWon),
			fmt.Sprintf("%d/%d/%d", e.Speed, e.Stamina, e.Power),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init implements tea.Model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScenario):
			if len(m.scenarios) > 0 {
				m.selected = (m.selected + 1) % len(m.scenarios)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevScenario):
			if len(m.scenarios) > 0 {
				m.selected = (m.selected - 1 + len(m.scenarios)) % len(m.scenarios)
				m.reload()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return noticeStyle.Render(fmt.Sprintf("records: %v", m.err)) + "\n"
	}
	if len(m.scenarios) == 0 {
		return dimStyle.Render("no scenarios registered") + "\n"
	}

	sc := m.scenarios[m.selected]
	header := titleStyle.Render("Career Records") + "  " +
		headerStyle.Render(sc.Name)
	if m.best != "" {
		header += dimStyle.Render(fmt.Sprintf("   best grade: %s", m.best))
	}

	return header + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys) + "\n"
}

// RunRecords starts the interactive records browser.
func RunRecords(store *storage.Store) error {
	p := tea.NewProgram(NewRecordsModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
