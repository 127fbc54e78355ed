package engine

import (
	"errors"
	"testing"
)

func fullBudget() PowerUpState {
	return PowerUpState{Divider: 3, Doubler: 3, Swapper: 3, Undo: 3}
}

func TestDividerHalvesValue(t *testing.T) {
	b := boardFromRows([][]int{
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})

	res, err := ApplyPowerUp(b, fullBudget(), PowerUpDivider, target.ID, 2048)
	if err != nil {
		t.Fatalf("ApplyPowerUp(divider) error: %v", err)
	}

	halved, _ := res.Board.TileByID(target.ID)
	if halved.Value != 4 {
		t.Errorf("divided value = %d, want 4", halved.Value)
	}
	if halved.Pos != target.Pos {
		t.Errorf("divider moved the tile: %v -> %v", target.Pos, halved.Pos)
	}
	if res.State.Divider != 2 {
		t.Errorf("divider budget = %d, want 2", res.State.Divider)
	}
	if res.Board.MaxTile != 4 {
		t.Errorf("MaxTile = %d, want 4", res.Board.MaxTile)
	}
}

func TestDividerRejectsIndivisibleTile(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})
	st := fullBudget()

	res, err := ApplyPowerUp(b, st, PowerUpDivider, target.ID, 2048)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("error = %v, want ErrInvalidTarget", err)
	}
	if !gridsEqual(valueGrid(res.Board), valueGrid(b)) {
		t.Error("failed divider mutated the board")
	}
	if res.State != st {
		t.Error("failed divider mutated the power-up state")
	}
}

func TestDividerRejectsUnknownTile(t *testing.T) {
	b := boardFromRows([][]int{
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	_, err := ApplyPowerUp(b, fullBudget(), PowerUpDivider, 999, 2048)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("error = %v, want ErrInvalidTarget", err)
	}
}

func TestDoublerSetsWonAtThreshold(t *testing.T) {
	b := boardFromRows([][]int{
		{1024, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})

	res, err := ApplyPowerUp(b, fullBudget(), PowerUpDoubler, target.ID, 2048)
	if err != nil {
		t.Fatalf("ApplyPowerUp(doubler) error: %v", err)
	}

	doubled, _ := res.Board.TileByID(target.ID)
	if doubled.Value != 2048 {
		t.Errorf("doubled value = %d, want 2048", doubled.Value)
	}
	if !res.Won {
		t.Error("doubling 1024 to 2048 should set Won")
	}
	if res.State.Doubler != 2 {
		t.Errorf("doubler budget = %d, want 2", res.State.Doubler)
	}
}

func TestDoublerBelowThresholdNotWon(t *testing.T) {
	b := boardFromRows([][]int{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})

	res, err := ApplyPowerUp(b, fullBudget(), PowerUpDoubler, target.ID, 2048)
	if err != nil {
		t.Fatalf("ApplyPowerUp(doubler) error: %v", err)
	}
	if res.Won {
		t.Error("doubling 4 should not set Won")
	}
}

func TestPowerUpExhausted(t *testing.T) {
	b := boardFromRows([][]int{
		{8, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})

	for _, kind := range []PowerUp{PowerUpDivider, PowerUpDoubler, PowerUpSwapper} {
		st := PowerUpState{}
		res, err := ApplyPowerUp(b, st, kind, target.ID, 2048)
		if !errors.Is(err, ErrExhausted) {
			t.Errorf("%s with zero budget: error = %v, want ErrExhausted", kind, err)
		}
		if !gridsEqual(valueGrid(res.Board), valueGrid(b)) {
			t.Errorf("%s with zero budget mutated the board", kind)
		}
	}
}

func TestSwapperTwoStep(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16},
	})
	first, _ := b.TileAt(Position{Row: 0, Col: 0})
	second, _ := b.TileAt(Position{Row: 3, Col: 3})
	st := fullBudget()

	// First pick records the selection without consuming a use.
	res, err := ApplyPowerUp(b, st, PowerUpSwapper, first.ID, 2048)
	if err != nil {
		t.Fatalf("first selection error: %v", err)
	}
	if res.State.SelectedTileID != first.ID {
		t.Errorf("SelectedTileID = %d, want %d", res.State.SelectedTileID, first.ID)
	}
	if res.State.Swapper != 3 {
		t.Errorf("swapper budget consumed on selection: %d", res.State.Swapper)
	}

	// Second pick swaps positions and clears the selection.
	res, err = ApplyPowerUp(res.Board, res.State, PowerUpSwapper, second.ID, 2048)
	if err != nil {
		t.Fatalf("swap error: %v", err)
	}
	swappedFirst, _ := res.Board.TileByID(first.ID)
	swappedSecond, _ := res.Board.TileByID(second.ID)
	if swappedFirst.Pos != (Position{Row: 3, Col: 3}) {
		t.Errorf("first tile at %v, want (3,3)", swappedFirst.Pos)
	}
	if swappedSecond.Pos != (Position{Row: 0, Col: 0}) {
		t.Errorf("second tile at %v, want (0,0)", swappedSecond.Pos)
	}
	if res.State.SelectedTileID != 0 {
		t.Error("selection should be cleared after the swap")
	}
	if res.State.Swapper != 2 {
		t.Errorf("swapper budget = %d, want 2", res.State.Swapper)
	}
}

func TestSwapperSameTileDeselects(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	target, _ := b.TileAt(Position{Row: 0, Col: 0})

	res, err := ApplyPowerUp(b, fullBudget(), PowerUpSwapper, target.ID, 2048)
	if err != nil {
		t.Fatalf("first selection error: %v", err)
	}

	res, err = ApplyPowerUp(res.Board, res.State, PowerUpSwapper, target.ID, 2048)
	if err != nil {
		t.Fatalf("deselection error: %v", err)
	}
	if res.State.SelectedTileID != 0 {
		t.Error("re-selecting the same tile should clear the selection")
	}
	if res.State.Swapper != 3 {
		t.Errorf("deselection consumed a use: budget %d, want 3", res.State.Swapper)
	}
}

func TestUndoRestoresPriorState(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	st := fullBudget()

	h := NewHistory(1)
	h.Push(GameState{Board: b, PowerUps: st})

	after := Move(b, DirLeft)
	if !after.Moved {
		t.Fatal("setup move should change the board")
	}

	restored, err := h.Undo(st)
	if err != nil {
		t.Fatalf("Undo error: %v", err)
	}
	if !gridsEqual(valueGrid(restored.Board), valueGrid(b)) {
		t.Errorf("undo board = %v, want %v", valueGrid(restored.Board), valueGrid(b))
	}
	if restored.Board.Score != b.Score {
		t.Errorf("undo score = %d, want %d", restored.Board.Score, b.Score)
	}
	if restored.PowerUps.Divider != st.Divider || restored.PowerUps.Swapper != st.Swapper {
		t.Error("undo should restore the recorded power-up counters")
	}
	if restored.PowerUps.Undo != st.Undo-1 {
		t.Errorf("undo budget = %d, want %d", restored.PowerUps.Undo, st.Undo-1)
	}
}

func TestUndoTwiceYieldsSameState(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	st := fullBudget()

	h := NewHistory(1)
	h.Push(GameState{Board: b, PowerUps: st})

	first, err := h.Undo(st)
	if err != nil {
		t.Fatalf("first Undo error: %v", err)
	}
	second, err := h.Undo(first.PowerUps)
	if err != nil {
		t.Fatalf("second Undo error: %v", err)
	}
	if !gridsEqual(valueGrid(first.Board), valueGrid(second.Board)) {
		t.Error("consecutive undos should restore the same state")
	}
}

func TestUndoErrors(t *testing.T) {
	h := NewHistory(1)

	if _, err := h.Undo(PowerUpState{Undo: 0}); !errors.Is(err, ErrExhausted) {
		t.Errorf("zero budget: error = %v, want ErrExhausted", err)
	}
	if _, err := h.Undo(PowerUpState{Undo: 1}); !errors.Is(err, ErrNoHistory) {
		t.Errorf("empty history: error = %v, want ErrNoHistory", err)
	}
}

func TestHistoryDepthBound(t *testing.T) {
	h := NewHistory(2)

	for i := 0; i < 4; i++ {
		b := NewBoard(4)
		b.Score = i
		h.Push(GameState{Board: b})
	}
	if h.Len() != 2 {
		t.Fatalf("history length = %d, want 2", h.Len())
	}

	st := PowerUpState{Undo: 3}
	s, err := h.Undo(st)
	if err != nil {
		t.Fatalf("Undo error: %v", err)
	}
	if s.Board.Score != 3 {
		t.Errorf("first undo score = %d, want 3", s.Board.Score)
	}

	s, err = h.Undo(s.PowerUps)
	if err != nil {
		t.Fatalf("second Undo error: %v", err)
	}
	if s.Board.Score != 2 {
		t.Errorf("second undo score = %d, want 2", s.Board.Score)
	}
}
