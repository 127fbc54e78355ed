package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusegrid/fusegrid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "up", "w", "k": // vim-style k for up
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "1":
		return core.ActionDivider, false
	case "2":
		return core.ActionDoubler, false
	case "3":
		return core.ActionSwapper, false
	case "u":
		return core.ActionUndo, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
