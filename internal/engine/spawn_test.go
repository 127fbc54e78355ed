package engine

import (
	"math/rand"
	"testing"
)

func TestSpawnOnFullBoardIsNoOp(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	rng := rand.New(rand.NewSource(1))

	nb := Spawn(b, rng)

	if !gridsEqual(valueGrid(nb), valueGrid(b)) {
		t.Error("Spawn on a full board should return the snapshot unchanged")
	}
	if len(nb.Tiles) != len(b.Tiles) {
		t.Errorf("tile count changed: %d -> %d", len(b.Tiles), len(nb.Tiles))
	}
}

func TestSpawnFillsOnlyEmptyCell(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	})
	rng := rand.New(rand.NewSource(7))

	nb := Spawn(b, rng)

	if !nb.Full() {
		t.Fatal("board should be full after spawning into the last empty cell")
	}
	spawned, ok := nb.TileAt(Position{Row: 2, Col: 2})
	if !ok {
		t.Fatal("spawn should land on the only empty cell")
	}
	if !spawned.New {
		t.Error("spawned tile should carry the New flag")
	}
	if spawned.Merged || spawned.Prev != nil {
		t.Error("spawned tile should have no merge flag or previous position")
	}
}

func TestSpawnNeverOverwrites(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	})
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 12; i++ {
		nb := Spawn(b, rng)
		if len(nb.Tiles) != len(b.Tiles)+1 {
			t.Fatalf("spawn %d: tile count %d, want %d", i, len(nb.Tiles), len(b.Tiles)+1)
		}
		seen := make(map[Position]bool)
		for _, tile := range nb.Tiles {
			if seen[tile.Pos] {
				t.Fatalf("spawn %d: two tiles at %v", i, tile.Pos)
			}
			seen[tile.Pos] = true
		}
		b = nb
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	base := boardFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	a := Spawn(base, rand.New(rand.NewSource(42)))
	b := Spawn(base, rand.New(rand.NewSource(42)))

	if !gridsEqual(valueGrid(a), valueGrid(b)) {
		t.Errorf("same seed should spawn identically:\n%v\nvs\n%v", valueGrid(a), valueGrid(b))
	}
}

func TestDifficultyScalar(t *testing.T) {
	if d := difficultyScalar(0, 0); d != 0 {
		t.Errorf("fresh game scalar = %v, want 0", d)
	}

	// Monotonic in score for a fixed max tile.
	prev := -1.0
	for _, score := range []int{0, 10, 100, 1000, 10000, 1000000} {
		d := difficultyScalar(score, 64)
		if d < prev {
			t.Errorf("scalar decreased: D(%d)=%v < %v", score, d, prev)
		}
		prev = d
	}

	// Capped at 7.
	if d := difficultyScalar(1<<40, 1<<20); d != 7 {
		t.Errorf("scalar cap = %v, want 7", d)
	}
}

func TestSpawnWeightsCurve(t *testing.T) {
	prevShare2 := 2.0
	prevShare4 := 0.0

	for d := 0.0; d <= 4.0; d += 0.5 {
		w2, w4, w8, w16 := spawnWeights(d)
		total := w2 + w4 + w8 + w16

		share2 := w2 / total
		share4 := w4 / total
		if share2 >= prevShare2 && d > 0 {
			t.Errorf("w2 share did not decrease at D=%v: %v >= %v", d, share2, prevShare2)
		}
		if share4 <= prevShare4 && d > 0 {
			t.Errorf("w4 share did not increase at D=%v: %v <= %v", d, share4, prevShare4)
		}
		prevShare2 = share2
		prevShare4 = share4

		if d < 3 && w8 != 0 {
			t.Errorf("w8 = %v at D=%v, want 0 below 3", w8, d)
		}
		if w16 != 0 {
			t.Errorf("w16 = %v at D=%v, want 0 at or below 4", w16, d)
		}
	}

	// Late ramp: 16s enter past D=4.5.
	_, _, _, w16 := spawnWeights(5)
	if w16 <= 0 {
		t.Error("w16 should be positive at D=5")
	}
}

func TestRollSpawnValue(t *testing.T) {
	// Fresh game: the distribution is dominated by 2s and 16 is
	// unreachable.
	if v := rollSpawnValue(0, 0, 0.0); v != 2 {
		t.Errorf("rollSpawnValue(0,0,0.0) = %d, want 2", v)
	}
	if v := rollSpawnValue(0, 0, 0.999999); v == 8 || v == 16 {
		t.Errorf("fresh game rolled a %d, want only 2 or 4", v)
	}

	// Deep late game: the top roll lands on 16.
	if v := rollSpawnValue(1<<30, 1<<16, 0.999999); v != 16 {
		t.Errorf("late game top roll = %d, want 16", v)
	}
}

func TestNewFlagClearsNextMove(t *testing.T) {
	b := boardFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	b = Spawn(b, rand.New(rand.NewSource(5)))

	res := Move(b, DirLeft)
	for _, tile := range res.Board.Tiles {
		if tile.New {
			t.Errorf("tile %d kept New flag across a move", tile.ID)
		}
	}
}
