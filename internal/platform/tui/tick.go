// Package tui provides the Bubble Tea integration for turfline: the career
// screen loop, key-to-token mapping, race playback pacing, and the Wish SSH
// server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaybackFPS is the frame rate of the race replay.
const PlaybackFPS = 30

// TickMsg advances the race playback by one frame.
type TickMsg time.Time

// tickCmd returns a command that sends playback ticks at PlaybackFPS.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/PlaybackFPS, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
