package engine

// GameState bundles everything undo must restore atomically: the board
// snapshot and the power-up counters that went with it.
type GameState struct {
	Board    Board
	PowerUps PowerUpState
}

// History is a bounded stack of past game states. The default depth of 1
// gives the documented single-level undo: rewinding twice without an
// intervening move lands on the same state both times. Larger depths step
// further back, still converging on the oldest retained state.
type History struct {
	depth  int
	states []GameState
}

// NewHistory creates a history retaining at most depth states.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth}
}

// Push records a state, evicting the oldest when the depth bound is hit.
func (h *History) Push(s GameState) {
	s.Board = s.Board.Clone()
	h.states = append(h.states, s)
	if len(h.states) > h.depth {
		h.states = h.states[1:]
	}
}

// Len returns the number of retained states.
func (h *History) Len() int {
	return len(h.states)
}

// Clear drops all retained states.
func (h *History) Clear() {
	h.states = nil
}

// Undo returns the most recent retained state. It consumes one use from
// the live undo budget: the restored counters are the recorded ones except
// for undo itself, which is the current count minus one (restoring it
// verbatim would refund the use that paid for the rewind). The last
// retained state is never removed, so undo can repeat but not run dry.
func (h *History) Undo(current PowerUpState) (GameState, error) {
	if current.Undo <= 0 {
		return GameState{}, ErrExhausted
	}
	if len(h.states) == 0 {
		return GameState{}, ErrNoHistory
	}

	s := h.states[len(h.states)-1]
	if len(h.states) > 1 {
		h.states = h.states[:len(h.states)-1]
	}

	s.Board = s.Board.Clone()
	s.PowerUps.Undo = current.Undo - 1
	return s, nil
}
