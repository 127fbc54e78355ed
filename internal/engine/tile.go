// Package engine implements the tile-merging puzzle core: board snapshots,
// the slide/merge simulation, difficulty-scaled tile spawning, power-ups,
// and terminal-state detection. Everything here is pure: each operation
// consumes one board snapshot and produces a new one, so callers can keep
// history, replay moves, and render diffs without the engine holding state.
package engine

// Position identifies a cell on the board.
type Position struct {
	Row int
	Col int
}

// Tile is a single tile on the board. The ID is stable for the tile's
// whole lifetime and never reused, so renderers can track identity through
// slides and merges.
type Tile struct {
	ID    int
	Value int // power of two, >= 2
	Pos   Position

	// Prev is the tile's position before the last move, nil if the tile
	// did not slide or merge this turn. Consumed by renderers only.
	Prev *Position

	New    bool // spawned this turn
	Merged bool // produced by a merge this turn
}

// Board is an immutable snapshot of the game board. Engine operations
// never mutate a Board in place; they clone it and return the clone.
type Board struct {
	Size    int
	Score   int
	MaxTile int
	Tiles   []Tile

	nextID int
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(size int) Board {
	return Board{Size: size, nextID: 1}
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	nb := b
	nb.Tiles = make([]Tile, len(b.Tiles))
	copy(nb.Tiles, b.Tiles)
	for i := range nb.Tiles {
		if p := nb.Tiles[i].Prev; p != nil {
			prev := *p
			nb.Tiles[i].Prev = &prev
		}
	}
	return nb
}

// InBounds reports whether the position lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Size && p.Col >= 0 && p.Col < b.Size
}

// TileAt returns the tile occupying the given position.
func (b Board) TileAt(p Position) (Tile, bool) {
	for _, t := range b.Tiles {
		if t.Pos == p {
			return t, true
		}
	}
	return Tile{}, false
}

// TileByID returns the tile with the given ID.
func (b Board) TileByID(id int) (Tile, bool) {
	for _, t := range b.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}

// EmptyPositions returns all unoccupied cells in row-major order.
func (b Board) EmptyPositions() []Position {
	occupied := make(map[Position]bool, len(b.Tiles))
	for _, t := range b.Tiles {
		occupied[t.Pos] = true
	}

	var cells []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			p := Position{Row: row, Col: col}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	return len(b.Tiles) == b.Size*b.Size
}

// addTile places a freshly allocated tile on the board. The caller must
// ensure the position is empty.
func (b *Board) addTile(p Position, value int, isNew bool) Tile {
	t := Tile{
		ID:    b.nextID,
		Value: value,
		Pos:   p,
		New:   isNew,
	}
	b.nextID++
	b.Tiles = append(b.Tiles, t)
	if value > b.MaxTile {
		b.MaxTile = value
	}
	return t
}

// refreshMaxTile recomputes MaxTile from the tiles present.
func (b *Board) refreshMaxTile() {
	maxVal := 0
	for _, t := range b.Tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	b.MaxTile = maxVal
}

// clearTurnFlags resets the per-turn tile markers. Called at the start of
// each move so New/Merged/Prev describe only the most recent turn.
func (b *Board) clearTurnFlags() {
	for i := range b.Tiles {
		b.Tiles[i].New = false
		b.Tiles[i].Merged = false
		b.Tiles[i].Prev = nil
	}
}
