// Package storage persists games-played / games-won counters and a history
// of finished rounds in SQLite. It uses the pure-Go modernc.org/sqlite
// driver so the binary needs no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Stats are the per-variant counters.
type Stats struct {
	GameID     string
	Played     int
	Won        int
	LastPlayed time.Time
}

// WinRate returns Won/Played as a percentage, or 0 when nothing was played.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) * 100 / float64(s.Played)
}

// Outcome values stored in the results table.
const (
	OutcomeWin       = "win"
	OutcomeLoss      = "loss"
	OutcomeAbandoned = "abandoned"
)

// Result is one finished round.
type Result struct {
	ID        int64
	GameID    string
	SessionID string // Empty for local play
	Width     int
	Height    int
	Mines     int
	Outcome   string
	Revealed  int
	Cheated   bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS stats (
			game_id TEXT PRIMARY KEY,
			played INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			last_played DATETIME
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			cheated INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id, id DESC);
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

// RecordPlayed increments the games-played counter for a variant.
func (s *Store) RecordPlayed(gameID string) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (game_id, played, won, last_played)
		 VALUES (?, 1, 0, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   played = played + 1,
		   last_played = CURRENT_TIMESTAMP`,
		gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record played: %w", err)
	}
	return nil
}

// RecordWon increments the games-won counter for a variant.
func (s *Store) RecordWon(gameID string) error {
	_, err := s.db.Exec(
		`INSERT INTO stats (game_id, played, won, last_played)
		 VALUES (?, 0, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET won = won + 1`,
		gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record win: %w", err)
	}
	return nil
}

// Stats returns the counters for a variant. Unknown variants report zeros.
func (s *Store) Stats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		"SELECT played, won, last_played FROM stats WHERE game_id = ?",
		gameID,
	).Scan(&st.Played, &st.Won, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// AllStats returns the counters for every variant that has been played,
// sorted by ID.
func (s *Store) AllStats() ([]Stats, error) {
	rows, err := s.db.Query("SELECT game_id, played, won, last_played FROM stats ORDER BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var out []Stats
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.Played, &st.Won, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveResult records a finished round and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (game_id, session_id, width, height, mines, outcome, revealed, cheated, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.SessionID, r.Width, r.Height, r.Mines, r.Outcome,
		r.Revealed, r.Cheated, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults returns the newest results for a variant, newest first.
// An empty gameID returns results for every variant.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, game_id, session_id, width, height, mines, outcome,
	                 revealed, cheated, duration_ms, created_at
	          FROM results`
	args := []any{}
	if gameID != "" {
		query += " WHERE game_id = ?"
		args = append(args, gameID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.SessionID, &r.Width, &r.Height, &r.Mines,
			&r.Outcome, &r.Revealed, &r.Cheated, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearStats deletes the counters and results for a variant.
func (s *Store) ClearStats(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM stats WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear stats: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
