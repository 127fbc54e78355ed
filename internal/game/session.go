// Package game orchestrates fusegrid sessions: it owns the current board
// snapshot, power-up counters, undo history and RNG, and drives the pure
// engine one player action at a time. The platform layer talks to a
// Session; the engine stays value-in/value-out underneath it.
package game

import (
	"math/rand"
	"time"

	"github.com/fusegrid/fusegrid/internal/config"
	"github.com/fusegrid/fusegrid/internal/engine"
)

// initialTiles is the number of tiles spawned on a fresh board.
const initialTiles = 2

// Options configure a session at start.
type Options struct {
	Config     config.GameConfig
	Difficulty config.Difficulty
	Endless    bool  // ignore the win target, play forever
	Seed       int64 // RNG seed, 0 means time-based
}

// Session is one running game. All mutable state lives here; every turn
// replaces the board snapshot with a new one produced by the engine.
type Session struct {
	opts     Options
	rng      *rand.Rand
	board    engine.Board
	powerups engine.PowerUpState
	history  *engine.History

	won      bool // win threshold reached at least once
	gameOver bool
	moves    int
}

// NewSession starts a game with two spawned tiles.
func NewSession(opts Options) *Session {
	opts.Config.Normalize()
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	s := &Session{opts: opts}
	s.reset(opts.Seed)
	return s
}

func (s *Session) reset(seed int64) {
	budget := s.opts.Config.BudgetFor(s.opts.Difficulty)

	s.rng = rand.New(rand.NewSource(seed))
	s.board = engine.NewBoard(s.opts.Config.Board.Size)
	s.powerups = engine.PowerUpState{
		Divider: budget.Divider,
		Doubler: budget.Doubler,
		Swapper: budget.Swapper,
		Undo:    budget.Undo,
	}
	s.history = engine.NewHistory(s.opts.Config.History.Depth)
	s.won = false
	s.gameOver = false
	s.moves = 0

	for i := 0; i < initialTiles; i++ {
		s.board = engine.Spawn(s.board, s.rng)
	}
}

// Restart begins a new game with a fresh seed.
func (s *Session) Restart(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.reset(seed)
}

// winTarget returns the configured win threshold, 0 in endless mode.
func (s *Session) winTarget() int {
	if s.opts.Endless {
		return 0
	}
	return s.opts.Config.Board.WinTarget
}

// Move slides the board in the given direction. If the board changed, one
// tile is spawned, the prior state is recorded for undo, and the terminal
// flags are re-evaluated. Returns false when the move was a no-op.
func (s *Session) Move(dir engine.Direction) bool {
	if s.gameOver {
		return false
	}

	res := engine.Move(s.board, dir)
	if !res.Moved {
		return false
	}

	s.history.Push(engine.GameState{Board: s.board, PowerUps: s.powerups})
	s.board = engine.Spawn(res.Board, s.rng)
	s.moves++

	// A swap selection does not survive the board changing under it.
	s.powerups.SelectedTileID = 0

	if engine.HasWon(s.board, s.winTarget()) {
		s.won = true
	}
	s.gameOver = engine.IsGameOver(s.board, s.powerups)
	return true
}

// ApplyPowerUp applies a power-up to the tile with the given ID. Undo is
// dispatched to the history; the other kinds go through the engine. The
// prior state is recorded for undo whenever a use is actually consumed.
func (s *Session) ApplyPowerUp(kind engine.PowerUp, targetID int) error {
	if kind == engine.PowerUpUndo {
		return s.Undo()
	}

	prior := engine.GameState{Board: s.board, PowerUps: s.powerups}
	res, err := engine.ApplyPowerUp(s.board, s.powerups, kind, targetID, s.winTarget())
	if err != nil {
		return err
	}

	consumed := res.State.Remaining(kind) < s.powerups.Remaining(kind)
	if consumed {
		s.history.Push(prior)
	}

	s.board = res.Board
	s.powerups = res.State
	if res.Won {
		s.won = true
	}
	s.gameOver = engine.IsGameOver(s.board, s.powerups)
	return nil
}

// Undo rewinds to the most recent recorded state, consuming one use from
// the undo budget. It also clears a stuck game-over flag: the restored
// state was playable when it was recorded.
func (s *Session) Undo() error {
	restored, err := s.history.Undo(s.powerups)
	if err != nil {
		return err
	}

	s.board = restored.Board
	s.powerups = restored.PowerUps
	s.gameOver = engine.IsGameOver(s.board, s.powerups)
	s.won = engine.HasWon(s.board, s.winTarget())
	return nil
}

// Board returns the current board snapshot.
func (s *Session) Board() engine.Board {
	return s.board
}

// PowerUps returns the current power-up counters.
func (s *Session) PowerUps() engine.PowerUpState {
	return s.powerups
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.board.Score
}

// MaxTile returns the highest tile value on the board.
func (s *Session) MaxTile() int {
	return s.board.MaxTile
}

// GridSize returns the board dimension.
func (s *Session) GridSize() int {
	return s.opts.Config.Board.Size
}

// Moves returns the number of board-changing moves made.
func (s *Session) Moves() int {
	return s.moves
}

// Difficulty returns the session's difficulty preset.
func (s *Session) Difficulty() config.Difficulty {
	return s.opts.Difficulty
}

// Endless reports whether the session ignores the win target.
func (s *Session) Endless() bool {
	return s.opts.Endless
}

// WinTarget returns the tile value that wins, 0 in endless mode.
func (s *Session) WinTarget() int {
	return s.winTarget()
}

// Won reports whether the win threshold was ever reached. Winning does
// not end the game; play continues until the board is stuck.
func (s *Session) Won() bool {
	return s.won
}

// GameOver reports whether the game is stuck with no power-ups left.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// CanUndo reports whether an undo would succeed right now.
func (s *Session) CanUndo() bool {
	return s.powerups.Undo > 0 && s.history.Len() > 0
}
