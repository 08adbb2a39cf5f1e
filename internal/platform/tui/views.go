package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ilyakav/turfline/internal/career"
	"github.com/ilyakav/turfline/internal/session"
	"github.com/ilyakav/turfline/internal/training"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 2)
)

// renderState dispatches to the view for the current flow state.
func (m Model) renderState() string {
	var body string
	switch m.sess.State() {
	case session.StateMainMenu:
		body = m.viewMainMenu()
	case session.StateCharacterSetup:
		body = m.viewCharacterSetup()
	case session.StateTutorial:
		body = m.viewTutorial()
	case session.StateTraining:
		body = m.viewTraining()
	case session.StateHelp:
		body = m.viewHelp()
	case session.StateRacePreview:
		body = m.viewRacePreview()
	case session.StateFieldLineup:
		body = m.viewFieldLineup()
	case session.StateStrategySelect:
		body = m.viewStrategySelect()
	case session.StateRaceRunning:
		body = m.viewRaceRunning()
	case session.StateRaceResults:
		body = m.viewRaceResults()
	case session.StateCareerComplete:
		body = m.viewCareerComplete()
	default:
		body = dimStyle.Render("nothing to show")
	}

	if notice := m.sess.Notice(); notice != "" {
		body += "\n\n" + noticeStyle.Render(notice)
	}

	return frameStyle.Render(body)
}

func (m Model) viewMainMenu() string {
	sc := m.sess.Scenario()
	var b strings.Builder
	b.WriteString(titleStyle.Render("TURFLINE") + "\n")
	b.WriteString(dimStyle.Render("a racing career in your terminal") + "\n\n")
	b.WriteString(fmt.Sprintf("Scenario: %s — %s\n", sc.Name, sc.Description))
	b.WriteString(fmt.Sprintf("%d turns, %d races\n\n", sc.MaxTurns, len(sc.Races)))
	b.WriteString("  [1] Start career\n")
	b.WriteString("  [2] Tutorial\n")
	b.WriteString("  [3] Help\n\n")
	b.WriteString(dimStyle.Render("enter to start, q to quit"))
	return b.String()
}

func (m Model) viewCharacterSetup() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Choose your horse") + "\n\n")
	for i, br := range m.sess.Breeds().All() {
		b.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, titleStyle.Render(br.Name)))
		b.WriteString("      " + dimStyle.Render(br.Description) + "\n")
		b.WriteString(fmt.Sprintf("      caps %d/%d/%d  growth %s/%s/%s  prefers %s\n",
			br.Caps.Speed, br.Caps.Stamina, br.Caps.Power,
			br.Growth.Speed, br.Growth.Stamina, br.Growth.Power,
			br.Preferred()))
	}
	b.WriteString("\n" + dimStyle.Render("b to go back"))
	return b.String()
}

var tutorialPages = []string{
	"Each turn you pick one action: train speed, stamina, or power,\n" +
		"rest to recover energy, or spend a media day to build bond.",
	"Training costs energy. Run dry and the session is refused —\n" +
		"nothing is lost, but the turn waits until you can afford it.",
	"Mood follows energy and health. A horse in great form trains\n" +
		"harder; bond thresholds stack further multipliers on top.",
	"Races arrive on fixed turns. Pick a running style that fits the\n" +
		"distance: front runners own the break, closers own the stretch.",
}

func (m Model) viewTutorial() string {
	page := m.sess.TutorialPage()
	if page >= len(tutorialPages) {
		page = len(tutorialPages) - 1
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Tutorial %d/%d", page+1, len(tutorialPages))) + "\n\n")
	b.WriteString(tutorialPages[page] + "\n\n")
	b.WriteString(dimStyle.Render("enter for next, b to skip"))
	return b.String()
}

func (m Model) viewTraining() string {
	comp := m.sess.Competitor()
	rec := m.sess.Record()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Turn %d/%d", rec.Turn, rec.MaxTurns)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   %d races left", m.sess.Schedule().Remaining())) + "\n\n")

	b.WriteString(playerStyle.Render(comp.Name) + "\n")
	b.WriteString(fmt.Sprintf("  Speed %3d  Stamina %3d  Power %3d\n",
		comp.Stats.Speed, comp.Stats.Stamina, comp.Stats.Power))
	b.WriteString(fmt.Sprintf("  Energy %s  Mood %s  Bond %d\n\n",
		energyBar(comp.Condition.Energy), moodColored(comp.Condition.Mood), comp.Bond))

	if last := m.sess.LastTraining(); last != nil {
		b.WriteString(renderTrainingResult(last) + "\n\n")
	}

	b.WriteString("  [1] Speed gallop   [2] Stamina work   [3] Power hill\n")
	b.WriteString("  [4] Rest day       [5] Media day\n\n")
	b.WriteString(dimStyle.Render("h for help, q to quit (career is saved)"))
	return b.String()
}

func renderTrainingResult(r *training.Result) string {
	switch r.Kind {
	case training.KindRest:
		return goodStyle.Render(fmt.Sprintf("Rested. Energy %+d.", r.EnergyDelta))
	case training.KindMedia:
		return goodStyle.Render(fmt.Sprintf("Media day. Bond %+d, energy %+d.", r.BondDelta, r.EnergyDelta))
	default:
		return goodStyle.Render(fmt.Sprintf("%s %+d (energy %+d).", r.Stat, r.StatDelta, r.EnergyDelta))
	}
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Help") + "\n\n")
	b.WriteString("Guide one horse through a fixed season of training turns\n")
	b.WriteString("and scheduled races, then collect your grade.\n\n")
	b.WriteString("Valid inputs here and everywhere are listed per screen;\n")
	b.WriteString("anything else prints the accepted tokens.\n\n")
	b.WriteString("  1-5      pick a training action\n")
	b.WriteString("  enter    confirm / advance\n")
	b.WriteString("  b / esc  back\n")
	b.WriteString("  q        quit (training-screen careers are saved)\n\n")
	b.WriteString(dimStyle.Render("enter to return"))
	return b.String()
}

func (m Model) viewRacePreview() string {
	r := m.sess.PendingRace()
	var b strings.Builder
	b.WriteString(titleStyle.Render("RACE DAY") + "\n\n")
	b.WriteString(headerStyle.Render(r.Name) + "\n")
	b.WriteString(fmt.Sprintf("  %s · %dm · field of %d\n\n", r.Category, r.DistanceM, r.FieldSize))
	b.WriteString(dimStyle.Render("enter to see the field"))
	return b.String()
}

func (m Model) viewFieldLineup() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Field") + "\n\n")
	for i, ent := range m.sess.PendingField() {
		name := ent.Name
		if ent.IsPlayer {
			name = playerStyle.Render(name + " (you)")
		}
		b.WriteString(fmt.Sprintf("  %2d  %-24s %s\n", i+1, name, dimStyle.Render(ent.Strategy.String())))
	}
	b.WriteString("\n" + dimStyle.Render("enter to choose your running style"))
	return b.String()
}

func (m Model) viewStrategySelect() string {
	comp := m.sess.Competitor()
	var b strings.Builder
	b.WriteString(headerStyle.Render("Running style") + "\n\n")
	b.WriteString("  [1] Front Runner — break fast, hold on\n")
	b.WriteString("  [2] Stalker      — sit midfield, steady\n")
	b.WriteString("  [3] Closer       — save ground, late surge\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("current: %s", comp.Strategy)))
	return b.String()
}

func (m Model) viewRaceRunning() string {
	pb := m.sess.Playback()
	r := m.sess.PendingRace()
	var b strings.Builder
	b.WriteString(headerStyle.Render(r.Name) + "\n\n")
	b.WriteString(renderTrack(pb, m.width))
	b.WriteString("\n" + dimStyle.Render("enter to skip"))
	return b.String()
}

func (m Model) viewRaceResults() string {
	out := m.sess.LastOutcome()
	var b strings.Builder
	b.WriteString(headerStyle.Render(out.Race.Name+" — Result") + "\n\n")
	for _, res := range out.Results {
		name := res.Entrant.Name
		if res.Entrant.IsPlayer {
			name = playerStyle.Render(name + " (you)")
		}
		b.WriteString(fmt.Sprintf("  %2d  %-24s %7.2fs\n", res.Rank, name, res.TimeSecs))
	}
	b.WriteString("\n")
	if out.Won() {
		b.WriteString(goodStyle.Render("You won!") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Finished %s.\n", ordinal(out.PlayerRank)))
	}
	b.WriteString("\n" + dimStyle.Render("enter to continue"))
	return b.String()
}

func (m Model) viewCareerComplete() string {
	comp := m.sess.Competitor()
	rec := m.sess.Record()
	var b strings.Builder
	b.WriteString(titleStyle.Render("CAREER COMPLETE") + "\n\n")
	b.WriteString(fmt.Sprintf("%s retires after %d turns.\n\n", playerStyle.Render(comp.Name), rec.MaxTurns))
	b.WriteString(fmt.Sprintf("  Races: %d   Wins: %d\n", rec.RacesRun, rec.RacesWon))
	b.WriteString(fmt.Sprintf("  Final: Speed %d, Stamina %d, Power %d\n", comp.Stats.Speed, comp.Stats.Stamina, comp.Stats.Power))
	b.WriteString(fmt.Sprintf("  Training sessions: %d\n\n", rec.TotalTrainingSessions))

	for _, out := range m.sess.ResultsLog() {
		res := out.PlayerResult()
		b.WriteString(fmt.Sprintf("  %-20s %s\n", out.Race.Name, ordinal(res.Rank)))
	}

	b.WriteString("\n  Grade: " + titleStyle.Render(string(m.sess.Grade())) + "\n\n")
	b.WriteString(dimStyle.Render("enter for main menu, q to quit"))
	return b.String()
}

// energyBar renders a 10-segment energy gauge.
func energyBar(energy int) string {
	filled := energy / 10
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	style := goodStyle
	if energy < 30 {
		style = noticeStyle
	}
	return style.Render(bar) + fmt.Sprintf(" %d", energy)
}

func moodColored(m career.Mood) string {
	if m >= career.MoodGood {
		return goodStyle.Render(m.String())
	}
	if m <= career.MoodTired {
		return noticeStyle.Render(m.String())
	}
	return m.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
