// Package config provides YAML-based game configuration loading and
// difficulty management for fusegrid.
package config

// GameConfig contains all tunable parameters for a fusegrid game.
type GameConfig struct {
	Board    BoardConfig    `yaml:"board"`
	History  HistoryConfig  `yaml:"history"`
	PowerUps PowerUpBudgets `yaml:"powerups"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size      int `yaml:"size"`       // grid dimension, 4-6
	WinTarget int `yaml:"win_target"` // tile value that wins, 0 disables
}

// HistoryConfig defines undo behavior.
type HistoryConfig struct {
	Depth int `yaml:"depth"` // retained undo states, default 1
}

// PowerUpBudgets maps each difficulty to its power-up allowance.
type PowerUpBudgets struct {
	Easy   Budget `yaml:"easy"`
	Medium Budget `yaml:"medium"`
	Hard   Budget `yaml:"hard"`
}

// Budget is the per-kind use allowance for one difficulty. Counters are
// fixed at game start and never replenished mid-game.
type Budget struct {
	Divider int `yaml:"divider"`
	Doubler int `yaml:"doubler"`
	Swapper int `yaml:"swapper"`
	Undo    int `yaml:"undo"`
}

// minGridSize and maxGridSize bound the playable board dimensions.
const (
	minGridSize = 4
	maxGridSize = 6
)

// Normalize clamps out-of-range values to playable defaults.
func (c *GameConfig) Normalize() {
	if c.Board.Size < minGridSize {
		c.Board.Size = minGridSize
	}
	if c.Board.Size > maxGridSize {
		c.Board.Size = maxGridSize
	}
	if c.Board.WinTarget < 0 {
		c.Board.WinTarget = 0
	}
	if c.History.Depth < 1 {
		c.History.Depth = 1
	}
}
