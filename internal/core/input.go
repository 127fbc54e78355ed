package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - move tiles up
	ActionDown           // S, Down arrow, J - move tiles down
	ActionLeft           // A, Left arrow, H - move tiles left
	ActionRight          // D, Right arrow, L - move tiles right
	ActionDivider        // 1 - arm the divider power-up
	ActionDoubler        // 2 - arm the doubler power-up
	ActionSwapper        // 3 - arm the swapper power-up
	ActionUndo           // U - undo the last turn
	ActionConfirm        // Enter - apply an armed power-up to the cursor tile
	ActionBack           // Esc - cancel targeting / leave
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDivider:
		return "Divider"
	case ActionDoubler:
		return "Doubler"
	case ActionSwapper:
		return "Swapper"
	case ActionUndo:
		return "Undo"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four move
// directions.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}
