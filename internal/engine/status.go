package engine

// HasPossibleMerge reports whether any two adjacent tiles (horizontally or
// vertically) share a value, i.e. whether a merge is still reachable.
func HasPossibleMerge(b Board) bool {
	values := make(map[Position]int, len(b.Tiles))
	for _, t := range b.Tiles {
		values[t.Pos] = t.Value
	}
	for p, v := range values {
		right := Position{Row: p.Row, Col: p.Col + 1}
		down := Position{Row: p.Row + 1, Col: p.Col}
		if rv, ok := values[right]; ok && rv == v {
			return true
		}
		if dv, ok := values[down]; ok && dv == v {
			return true
		}
	}
	return false
}

// IsGameOver reports whether the game is stuck: every cell occupied, no
// adjacent equal pair in any direction, and the board-mutating power-ups
// (divider, doubler, swapper) all spent. Undo is deliberately excluded:
// it rewinds to a past state but cannot prove a legal move exists, and
// that past state's own liveness was already evaluated.
func IsGameOver(b Board, st PowerUpState) bool {
	if !b.Full() {
		return false
	}
	if HasPossibleMerge(b) {
		return false
	}
	return st.Divider == 0 && st.Doubler == 0 && st.Swapper == 0
}

// HasWon reports whether any tile has reached the win threshold. Winning
// is non-exclusive with game-over: reaching the target does not stop play
// unless the caller chooses to treat it as terminal.
func HasWon(b Board, target int) bool {
	return target > 0 && b.MaxTile >= target
}
