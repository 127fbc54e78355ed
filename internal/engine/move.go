package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit vector for the direction as (row, col) deltas.
func (d Direction) Vector() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a Move call.
type MoveResult struct {
	Board Board
	Moved bool // at least one tile slid or merged
}

// Move slides all tiles in the given direction, merging equal neighbors.
// Tiles produced by a merge this move never merge again (a 2-2-4 row moved
// toward the 4 becomes 4-4, not 8). The input board is not mutated; given
// identical input the output is identical.
func Move(b Board, dir Direction) MoveResult {
	nb := b.Clone()
	nb.clearTurnFlags()

	size := nb.Size
	dRow, dCol := dir.Vector()

	// Index of the tile occupying each cell, -1 when empty.
	grid := make([]int, size*size)
	for i := range grid {
		grid[i] = -1
	}
	for i, t := range nb.Tiles {
		grid[t.Pos.Row*size+t.Pos.Col] = i
	}
	alive := make([]bool, len(nb.Tiles))
	for i := range alive {
		alive[i] = true
	}

	// Traverse each line starting from the far edge in the movement
	// direction, so no tile is processed before a tile ahead of it.
	rows := make([]int, size)
	cols := make([]int, size)
	for i := 0; i < size; i++ {
		rows[i] = i
		cols[i] = i
	}
	if dRow == 1 {
		reverse(rows)
	}
	if dCol == 1 {
		reverse(cols)
	}

	moved := false
	for _, row := range rows {
		for _, col := range cols {
			idx := grid[row*size+col]
			if idx < 0 {
				continue
			}
			tile := nb.Tiles[idx]
			start := tile.Pos

			// Walk along the movement vector: farthest empty cell
			// reached, and the first occupying tile beyond it.
			farthest := start
			next := Position{Row: start.Row + dRow, Col: start.Col + dCol}
			for nb.InBounds(next) && grid[next.Row*size+next.Col] < 0 {
				farthest = next
				next = Position{Row: next.Row + dRow, Col: next.Col + dCol}
			}

			if nb.InBounds(next) {
				blockIdx := grid[next.Row*size+next.Col]
				block := nb.Tiles[blockIdx]
				if block.Value == tile.Value && !block.Merged {
					// Merge: both source tiles die, one new tile takes
					// the blocking tile's place.
					prev := start
					merged := nb.addTile(block.Pos, tile.Value*2, false)
					mIdx := len(nb.Tiles) - 1
					nb.Tiles[mIdx].Merged = true
					nb.Tiles[mIdx].Prev = &prev

					alive[idx] = false
					alive[blockIdx] = false
					alive = append(alive, true)
					grid[start.Row*size+start.Col] = -1
					grid[block.Pos.Row*size+block.Pos.Col] = mIdx

					nb.Score += merged.Value
					moved = true
					continue
				}
			}

			if farthest != start {
				prev := start
				nb.Tiles[idx].Pos = farthest
				nb.Tiles[idx].Prev = &prev
				grid[start.Row*size+start.Col] = -1
				grid[farthest.Row*size+farthest.Col] = idx
				moved = true
			}
		}
	}

	// Compact survivors in row-major order so the snapshot's tile set
	// stays deterministically ordered.
	compacted := make([]Tile, 0, len(nb.Tiles))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if idx := grid[row*size+col]; idx >= 0 && alive[idx] {
				compacted = append(compacted, nb.Tiles[idx])
			}
		}
	}
	nb.Tiles = compacted
	nb.refreshMaxTile()

	return MoveResult{Board: nb, Moved: moved}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
