// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is the outcome of one finished round.
type RoundRecord struct {
	ID          int64
	Variant     string // Registered game ID, e.g. "artillery" or "duel"
	Seed        int64
	Players     int
	Bots        int
	Winner      int    // Arena index of the winner, -1 for no survivor
	WinnerColor string // Empty when nobody survived
	Shots       int
	Ticks       int64
	CreatedAt   time.Time
}

// WinCount is the number of rounds won by one colour.
type WinCount struct {
	Color string
	Wins  int
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			players INTEGER NOT NULL,
			bots INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT -1,
			winner_color TEXT NOT NULL DEFAULT '',
			shots INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_variant ON rounds(variant);
		CREATE INDEX IF NOT EXISTS idx_rounds_color ON rounds(variant, winner_color);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (variant, seed, players, bots, winner, winner_color, shots, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Variant, r.Seed, r.Players, r.Bots, r.Winner, r.WinnerColor, r.Shots, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first. An empty
// variant matches every variant.
func (s *Store) RecentRounds(variant string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, players, bots, winner, winner_color, shots, ticks, created_at
		 FROM rounds
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Players, &r.Bots, &r.Winner,
			&r.WinnerColor, &r.Shots, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// WinTally counts wins per colour, most wins first. Rounds without a
// survivor are not counted. An empty variant matches every variant.
func (s *Store) WinTally(variant string) ([]WinCount, error) {
	rows, err := s.db.Query(
		`SELECT winner_color, COUNT(*) AS wins
		 FROM rounds
		 WHERE winner_color != '' AND (? = '' OR variant = ?)
		 GROUP BY winner_color
		 ORDER BY wins DESC, winner_color ASC`,
		variant, variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query win tally: %w", err)
	}
	defer rows.Close()

	var tally []WinCount
	for rows.Next() {
		var w WinCount
		if err := rows.Scan(&w.Color, &w.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		tally = append(tally, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tally, nil
}

// ClearRounds deletes all rounds for the given variant, or every round when
// variant is empty.
func (s *Store) ClearRounds(variant string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	Rounds     int
	NoWinner   int
	AvgShots   float64
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN winner_color = '' THEN 1 ELSE 0 END), 0), COALESCE(AVG(shots), 0)
		 FROM rounds WHERE variant = ?`,
		variant,
	).Scan(&stats.Rounds, &stats.NoWinner, &stats.AvgShots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and the string form sqlite returns.
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
