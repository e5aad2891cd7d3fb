// Package storage keeps the session run log in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and disappears with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrInvalidRun is returned by SaveRun for records that cannot be stored.
var ErrInvalidRun = errors.New("storage: invalid run")

// Store manages the run log database.
type Store struct {
	db *sql.DB
}

// Run is one finished run: a fresh start followed by play until game over.
type Run struct {
	ID        string // uuid, assigned by SaveRun when empty
	GameID    string
	Player    string
	Score     int
	Level     int // Level reached
	Duration  time.Duration
	CreatedAt time.Time
}

// RunStats aggregates every run of one game.
type RunStats struct {
	GameID    string
	Runs      int
	BestScore int
	BestLevel int
	AvgScore  float64
	Played    time.Duration
	LastRun   time.Time
}

// OpenSession opens an empty in-memory run log.
func OpenSession() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC, level DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database and drops the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its run id.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.GameID == "" {
		return "", fmt.Errorf("%w: empty game id", ErrInvalidRun)
	}
	if r.Score < 0 || r.Level < 1 {
		return "", fmt.Errorf("%w: score %d level %d", ErrInvalidRun, r.Score, r.Level)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, player, score, level, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Player, r.Score, r.Level, r.Duration.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

// TopRuns retrieves the best N runs for the given game.
// Runs are ordered by score, then level reached, then age.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, game_id, player, score, level, duration_ms, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, level DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS, createdMS int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Level, &durationMS, &createdMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdMS)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestLevel returns the highest level reached in any run of the game.
// Returns 0 if no runs exist.
func (s *Store) BestLevel(gameID string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}

	if !level.Valid {
		return 0, nil
	}
	return int(level.Int64), nil
}

// RunCount returns how many runs of the game were logged.
func (s *Store) RunCount(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Stats retrieves aggregated statistics for the game.
func (s *Store) Stats(gameID string) (RunStats, error) {
	stats := RunStats{GameID: gameID}
	var playedMS, lastMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(duration_ms), 0), COALESCE(MAX(created_at), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.BestLevel, &stats.AvgScore, &playedMS, &lastMS)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	stats.Played = time.Duration(playedMS) * time.Millisecond
	if lastMS > 0 {
		stats.LastRun = time.UnixMilli(lastMS)
	}
	return stats, nil
}

// ClearRuns deletes every run of the game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
