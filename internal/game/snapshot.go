package game

import "github.com/fusegrid/fusegrid/internal/engine"

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete session state for determinism testing
// and replay.
type Snapshot struct {
	Mode       string // "classic" or "endless"
	Difficulty string
	GridSize   int
	Score      int
	MaxTile    int
	Moves      int
	Board      [][]int
	PowerUps   engine.PowerUpState
	State      GameStateType
}

// Snapshot returns the current session snapshot for determinism
// verification. Won and game-over can hold at once; game-over wins for
// display because the board is stuck regardless.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.gameOver:
		state = StateGameOver
	case s.won:
		state = StateWon
	}

	mode := ModeClassic
	if s.opts.Endless {
		mode = ModeEndless
	}

	grid := make([][]int, s.board.Size)
	for i := range grid {
		grid[i] = make([]int, s.board.Size)
	}
	for _, t := range s.board.Tiles {
		grid[t.Pos.Row][t.Pos.Col] = t.Value
	}

	return Snapshot{
		Mode:       mode,
		Difficulty: string(s.opts.Difficulty),
		GridSize:   s.board.Size,
		Score:      s.board.Score,
		MaxTile:    s.board.MaxTile,
		Moves:      s.moves,
		Board:      grid,
		PowerUps:   s.powerups,
		State:      state,
	}
}
