// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents one finished game.
type ScoreEntry struct {
	ID         int64
	GameID     string // unique per game, assigned on save when empty
	Mode       string // "classic" or "endless"
	GridSize   int
	Difficulty string
	Score      int
	MaxTile    int
	Moves      int
	Won        bool
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(mode);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game. A fresh game UUID is assigned when
// the entry carries none. Returns the ID of the inserted record.
func (s *Store) SaveScore(entry ScoreEntry) (int64, error) {
	if entry.GameID == "" {
		entry.GameID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO scores (game_id, mode, grid_size, difficulty, score, max_tile, moves, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.GameID, entry.Mode, entry.GridSize, entry.Difficulty,
		entry.Score, entry.MaxTile, entry.Moves, entry.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const scoreColumns = `id, game_id, mode, grid_size, difficulty, score, max_tile, moves, won, created_at`

// scanScore reads one scores row. The driver may hand created_at back as
// either time.Time or a bare string depending on how the value was stored.
func scanScore(rows *sql.Rows) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	if err := rows.Scan(
		&e.ID, &e.GameID, &e.Mode, &e.GridSize, &e.Difficulty,
		&e.Score, &e.MaxTile, &e.Moves, &e.Won, &createdAt,
	); err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)
	return e, nil
}

func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no scores exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	BestTile   int
	AvgScore   float64
	TotalScore int64
	Wins       int
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0),
		        COALESCE(SUM(won), 0)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestTile,
		&stats.AvgScore, &stats.TotalScore, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllModeStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), MAX(max_tile), AVG(score), SUM(score), SUM(won), MAX(created_at)
		 FROM scores
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.GamesCount, &m.HighScore, &m.BestTile,
			&m.AvgScore, &m.TotalScore, &m.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTimestamp(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
