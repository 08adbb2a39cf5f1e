package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ilyakav/turfline/internal/race"
)

var (
	laneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	horseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	leaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// renderTrack draws one lane per entrant with the wire on the right.
// Positions come from the playback's current frame; the underlying outcome
// is already final.
func renderTrack(pb *race.Playback, width int) string {
	trackW := width - 24
	if trackW < 20 {
		trackW = 20
	}

	var b strings.Builder
	for _, pos := range pb.Positions() {
		x := int(pos.Progress * float64(trackW-1))
		lane := []rune(strings.Repeat("·", trackW))
		lane[x] = '>'

		name := pos.Entrant.Name
		if len(name) > 12 {
			name = name[:12]
		}
		label := fmt.Sprintf("%-12s ", name)

		line := laneStyle.Render(string(lane[:x])) +
			horseRune(pos) +
			laneStyle.Render(string(lane[x+1:]))

		suffix := laneStyle.Render("|")
		if pos.Finished {
			suffix = fmt.Sprintf("| %s", ordinal(pos.Rank))
		}

		if pos.Entrant.IsPlayer {
			label = playerStyle.Render(label)
		}
		b.WriteString(label + line + suffix + "\n")
	}
	return b.String()
}

func horseRune(pos race.LanePosition) string {
	if pos.Rank == 1 {
		return leaderStyle.Render(">")
	}
	if pos.Entrant.IsPlayer {
		return playerStyle.Render(">")
	}
	return horseStyle.Render(">")
}
