package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to raw flow input tokens.
// This centralizes key bindings and makes them testable; the flow machine
// does its own normalization (trim, case-fold, confirm folding).
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a raw input token for the session.
// Returns the token and whether the key was a quit request. A quit request
// never reaches the flow machine.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (token string, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return "", true
	case "enter", " ":
		// Both read as the acknowledgement keypress.
		return "", false
	case "esc":
		return "b", false
	}

	return key, false
}
