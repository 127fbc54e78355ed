package engine

import "errors"

// Errors surfaced by the power-up engine. All are recoverable: the caller
// gets its snapshot back untouched and decides how to surface the failure.
var (
	ErrInvalidTarget = errors.New("engine: invalid power-up target")
	ErrExhausted     = errors.New("engine: power-up budget exhausted")
	ErrNoHistory     = errors.New("engine: no history to undo")
)

// PowerUp identifies one of the four power-up kinds.
type PowerUp int

const (
	PowerUpDivider PowerUp = iota
	PowerUpDoubler
	PowerUpSwapper
	PowerUpUndo
)

// String returns a human-readable name for the power-up.
func (p PowerUp) String() string {
	switch p {
	case PowerUpDivider:
		return "divider"
	case PowerUpDoubler:
		return "doubler"
	case PowerUpSwapper:
		return "swapper"
	case PowerUpUndo:
		return "undo"
	default:
		return "unknown"
	}
}

// PowerUpState tracks the remaining uses for each power-up plus the
// in-flight swapper selection. Budgets are fixed at game start by
// difficulty and only ever decrease.
type PowerUpState struct {
	Divider int
	Doubler int
	Swapper int
	Undo    int

	// SelectedTileID is the first tile of a pending swap, 0 when no
	// selection is active.
	SelectedTileID int
}

// Remaining returns the unused budget for the given power-up.
func (s PowerUpState) Remaining(p PowerUp) int {
	switch p {
	case PowerUpDivider:
		return s.Divider
	case PowerUpDoubler:
		return s.Doubler
	case PowerUpSwapper:
		return s.Swapper
	case PowerUpUndo:
		return s.Undo
	default:
		return 0
	}
}

// ApplyResult is the outcome of a successful power-up application.
type ApplyResult struct {
	Board Board
	State PowerUpState
	Won   bool // doubler pushed a tile to the win threshold
}

// ApplyPowerUp applies a board-mutating power-up (divider, doubler or
// swapper) to the tile with the given ID. Undo goes through History, not
// here. On error the input snapshot and state are returned unchanged.
//
// The swapper is a two-step interaction: the first call records the
// selection without consuming a use, the second call swaps the two tiles.
// Re-selecting the same tile clears the selection.
func ApplyPowerUp(b Board, st PowerUpState, kind PowerUp, targetID int, winTarget int) (ApplyResult, error) {
	unchanged := ApplyResult{Board: b, State: st}

	if kind == PowerUpUndo {
		return unchanged, ErrInvalidTarget
	}
	if st.Remaining(kind) <= 0 {
		return unchanged, ErrExhausted
	}

	target, ok := b.TileByID(targetID)
	if !ok {
		return unchanged, ErrInvalidTarget
	}

	switch kind {
	case PowerUpDivider:
		if target.Value <= 2 {
			return unchanged, ErrInvalidTarget
		}
		nb := b.Clone()
		for i := range nb.Tiles {
			if nb.Tiles[i].ID == targetID {
				nb.Tiles[i].Value /= 2
			}
		}
		nb.refreshMaxTile()
		st.Divider--
		return ApplyResult{Board: nb, State: st}, nil

	case PowerUpDoubler:
		nb := b.Clone()
		doubled := 0
		for i := range nb.Tiles {
			if nb.Tiles[i].ID == targetID {
				nb.Tiles[i].Value *= 2
				doubled = nb.Tiles[i].Value
			}
		}
		nb.refreshMaxTile()
		st.Doubler--
		won := winTarget > 0 && doubled >= winTarget
		return ApplyResult{Board: nb, State: st, Won: won}, nil

	case PowerUpSwapper:
		if st.SelectedTileID == 0 {
			st.SelectedTileID = targetID
			return ApplyResult{Board: b, State: st}, nil
		}
		if st.SelectedTileID == targetID {
			// Same tile twice: deselect, no use consumed.
			st.SelectedTileID = 0
			return ApplyResult{Board: b, State: st}, nil
		}
		first, ok := b.TileByID(st.SelectedTileID)
		if !ok {
			// Stale selection (tile merged away since): start over
			// with this tile as the first pick.
			st.SelectedTileID = targetID
			return ApplyResult{Board: b, State: st}, nil
		}
		nb := b.Clone()
		for i := range nb.Tiles {
			switch nb.Tiles[i].ID {
			case first.ID:
				nb.Tiles[i].Pos = target.Pos
			case target.ID:
				nb.Tiles[i].Pos = first.Pos
			}
		}
		st.SelectedTileID = 0
		st.Swapper--
		return ApplyResult{Board: nb, State: st}, nil
	}

	return unchanged, ErrInvalidTarget
}
