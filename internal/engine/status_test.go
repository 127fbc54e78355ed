package engine

import (
	"math/rand"
	"testing"
)

func TestIsGameOver(t *testing.T) {
	stuck := [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	mergeable := [][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	withGap := [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 4096},
		{8192, 16384, 32768, 65536},
	}

	spent := PowerUpState{}

	tests := []struct {
		name     string
		board    [][]int
		powerups PowerUpState
		want     bool
	}{
		{"stuck board, all power-ups spent", stuck, spent, true},
		{"stuck board, divider remaining", stuck, PowerUpState{Divider: 1}, false},
		{"stuck board, doubler remaining", stuck, PowerUpState{Doubler: 1}, false},
		{"stuck board, swapper remaining", stuck, PowerUpState{Swapper: 1}, false},
		{"stuck board, only undo remaining", stuck, PowerUpState{Undo: 3}, true},
		{"full board with adjacent pair", mergeable, spent, false},
		{"board with empty cell", withGap, spent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsGameOver(boardFromRows(tt.board), tt.powerups)
			if got != tt.want {
				t.Errorf("IsGameOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasPossibleMerge(t *testing.T) {
	vertical := boardFromRows([][]int{
		{2, 4, 8, 16},
		{32, 4, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})
	if !HasPossibleMerge(vertical) {
		t.Error("vertically adjacent equal pair should be mergeable")
	}

	none := boardFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if HasPossibleMerge(none) {
		t.Error("checkerboard has no mergeable pair")
	}
}

func TestHasWon(t *testing.T) {
	b := boardFromRows([][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !HasWon(b, 2048) {
		t.Error("2048 tile should win with target 2048")
	}
	if HasWon(b, 4096) {
		t.Error("2048 tile should not win with target 4096")
	}
	if HasWon(b, 0) {
		t.Error("target 0 disables winning")
	}
}

// Full turn cycle: one free cell, a merge vacates another, spawn re-fills,
// and the game continues.
func TestTurnCycleKeepsGameAlive(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 0},
	})

	res := Move(b, DirLeft)
	if !res.Moved {
		t.Fatal("the adjacent 2s should merge moving left")
	}
	merged, ok := res.Board.TileAt(Position{Row: 0, Col: 0})
	if !ok || merged.Value != 4 {
		t.Fatalf("expected a 4 at (0,0), got %+v", merged)
	}

	spawned := Spawn(res.Board, rand.New(rand.NewSource(3)))
	if len(spawned.Tiles) != len(res.Board.Tiles)+1 {
		t.Fatal("spawn should fill one vacated cell")
	}

	if IsGameOver(spawned, PowerUpState{}) {
		t.Error("game should continue while the board has room or merges")
	}
}
