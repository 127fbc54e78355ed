package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "Open() failed")
	t.Cleanup(func() { store.Close() })

	return store
}

func classicEntry(score, maxTile int) ScoreEntry {
	return ScoreEntry{
		Mode:       "classic",
		GridSize:   4,
		Difficulty: "medium",
		Score:      score,
		MaxTile:    maxTile,
		Moves:      score / 4,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore(classicEntry(score, 256))
		require.NoError(t, err)
	}
	_, err := store.SaveScore(ScoreEntry{
		Mode: "endless", GridSize: 5, Difficulty: "hard", Score: 500, MaxTile: 512,
	})
	require.NoError(t, err)

	scores, err := store.TopScores("classic", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Sorted descending
	assert.Equal(t, 200, scores[0].Score)
	assert.Equal(t, 100, scores[1].Score)
	assert.Equal(t, 50, scores[2].Score)

	// Fields survive the round trip
	assert.Equal(t, "classic", scores[0].Mode)
	assert.Equal(t, 4, scores[0].GridSize)
	assert.Equal(t, "medium", scores[0].Difficulty)
	assert.Equal(t, 256, scores[0].MaxTile)
	assert.NotEmpty(t, scores[0].GameID, "a game UUID should be assigned on save")
	assert.False(t, scores[0].CreatedAt.IsZero())

	endless, err := store.TopScores("endless", 10)
	require.NoError(t, err)
	require.Len(t, endless, 1)
	assert.Equal(t, 500, endless[0].Score)
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for score := 10; score <= 60; score += 10 {
		_, err := store.SaveScore(classicEntry(score, 64))
		require.NoError(t, err)
	}

	scores, err := store.TopScores("classic", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 60, scores[0].Score)
}

func TestSaveScoreKeepsProvidedGameID(t *testing.T) {
	store := openTestStore(t)

	entry := classicEntry(42, 32)
	entry.GameID = "fixed-id"
	_, err := store.SaveScore(entry)
	require.NoError(t, err)

	scores, err := store.TopScores("classic", 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "fixed-id", scores[0].GameID)
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	high, err := store.HighScore("classic")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	for _, score := range []int{30, 90, 60} {
		_, err := store.SaveScore(classicEntry(score, 64))
		require.NoError(t, err)
	}

	high, err = store.HighScore("classic")
	require.NoError(t, err)
	assert.Equal(t, 90, high)
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(classicEntry(10, 16))
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{
		Mode: "endless", GridSize: 4, Difficulty: "easy", Score: 20, MaxTile: 16,
	})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("classic"))

	scores, err := store.TopScores("classic", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	// Other modes untouched
	endless, err := store.TopScores("endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1)
}

func TestGetModeStats(t *testing.T) {
	store := openTestStore(t)

	won := classicEntry(300, 2048)
	won.Won = true
	_, err := store.SaveScore(won)
	require.NoError(t, err)
	_, err = store.SaveScore(classicEntry(100, 128))
	require.NoError(t, err)

	stats, err := store.GetModeStats("classic")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 2048, stats.BestTile)
	assert.Equal(t, 1, stats.Wins)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestGetModeStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats("classic")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.GamesCount)
	assert.Equal(t, 0, stats.HighScore)
	assert.True(t, stats.LastPlayed.IsZero())
}

func TestGetAllModeStats(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(classicEntry(100, 128))
	require.NoError(t, err)
	_, err = store.SaveScore(ScoreEntry{
		Mode: "endless", GridSize: 6, Difficulty: "hard", Score: 700, MaxTile: 1024,
	})
	require.NoError(t, err)

	all, err := store.GetAllModeStats()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, 100, all["classic"].HighScore)
	assert.Equal(t, 700, all["endless"].HighScore)
	assert.Equal(t, 1024, all["endless"].BestTile)
}
