package engine

import (
	"math"
	"math/rand"
)

// maxDifficulty caps the spawn difficulty scalar.
const maxDifficulty = 7

// Spawn adds one tile to a uniformly chosen empty cell. The spawned value
// follows a difficulty curve derived from the current score and peak tile:
// early boards see almost only 2s, 4s become baseline as the game grows,
// and 8s then 16s appear late as a pressure valve. On a full board Spawn
// returns the snapshot unchanged.
func Spawn(b Board, rng *rand.Rand) Board {
	empty := b.EmptyPositions()
	if len(empty) == 0 {
		return b
	}

	nb := b.Clone()
	pos := empty[rng.Intn(len(empty))]
	value := rollSpawnValue(nb.Score, nb.MaxTile, rng.Float64())
	nb.addTile(pos, value, true)
	return nb
}

// difficultyScalar maps cumulative progress to [0, maxDifficulty].
// The argument to the logarithm is guarded: a fresh game (score 0, no
// tiles) yields 0, favoring value 2.
func difficultyScalar(score, maxTile int) float64 {
	raw := float64(score) + float64(maxTile)*20
	if raw < 1 {
		return 0
	}
	return math.Min(math.Log10(raw), maxDifficulty)
}

// spawnWeights returns the unnormalized weights for spawning 2, 4, 8, 16
// at difficulty d. w2 shrinks to a floor of 1 as d grows, w4 ramps up, w8
// enters past d=3 and w16 past d=4.5.
func spawnWeights(d float64) (w2, w4, w8, w16 float64) {
	w2 = math.Max(1, 100-20*d)
	w4 = math.Max(1, 5+30*d)
	w8 = math.Max(0, (d-3)*25)
	w16 = math.Max(0, (d-4.5)*40)
	return w2, w4, w8, w16
}

// rollSpawnValue picks a spawn value from a single uniform roll in [0, 1)
// over the cumulative weight ranges. The distribution is re-derived from
// score and maxTile on every call, never cached.
func rollSpawnValue(score, maxTile int, roll float64) int {
	w2, w4, w8, w16 := spawnWeights(difficultyScalar(score, maxTile))
	r := roll * (w2 + w4 + w8 + w16)
	switch {
	case r < w2:
		return 2
	case r < w2+w4:
		return 4
	case r < w2+w4+w8:
		return 8
	default:
		return 16
	}
}
