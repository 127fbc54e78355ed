package config

import (
	_ "embed"
)

//go:embed defaults/fusegrid.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration: classic 4x4 board,
// 2048 win target, single-level undo, and the standard per-difficulty
// power-up budgets (easy 3, medium 2, hard 1 of each).
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:      4,
			WinTarget: 2048,
		},
		History: HistoryConfig{
			Depth: 1,
		},
		PowerUps: PowerUpBudgets{
			Easy:   Budget{Divider: 3, Doubler: 3, Swapper: 3, Undo: 3},
			Medium: Budget{Divider: 2, Doubler: 2, Swapper: 2, Undo: 2},
			Hard:   Budget{Divider: 1, Doubler: 1, Swapper: 1, Undo: 1},
		},
	}
}
