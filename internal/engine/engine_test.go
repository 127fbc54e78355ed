package engine

// boardFromRows builds a board from a value matrix, 0 meaning empty.
// Tile IDs are assigned in row-major order starting at 1.
func boardFromRows(rows [][]int) Board {
	b := NewBoard(len(rows))
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				b.addTile(Position{Row: r, Col: c}, v, false)
			}
		}
	}
	return b
}

// valueGrid flattens a board back into a value matrix for comparison.
func valueGrid(b Board) [][]int {
	grid := make([][]int, b.Size)
	for i := range grid {
		grid[i] = make([]int, b.Size)
	}
	for _, t := range b.Tiles {
		grid[t.Pos.Row][t.Pos.Col] = t.Value
	}
	return grid
}

func gridsEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
