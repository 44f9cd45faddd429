// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/beltsim/internal/sim"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry describes one archived simulation run.
type RunEntry struct {
	ID         int64
	Source     string // Input file the bodies were loaded from
	Duration   float64
	TimeStep   float64
	BodyCount  int
	EventCount int
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			duration REAL NOT NULL,
			time_step REAL NOT NULL,
			body_count INTEGER NOT NULL,
			event_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS collisions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			ordinal INTEGER NOT NULL,
			t REAL NOT NULL,
			id_low INTEGER NOT NULL,
			id_high INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_collisions_run ON collisions(run_id, ordinal);
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

// SaveRun archives a completed simulation run with its full event log.
// The log order is preserved via the ordinal column. Returns the run ID.
func (s *Store) SaveRun(source string, duration, timeStep float64, bodyCount int, events []sim.Event) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (source, duration, time_step, body_count, event_count)
		 VALUES (?, ?, ?, ?, ?)`,
		source, duration, timeStep, bodyCount, len(events),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO collisions (run_id, ordinal, t, id_low, id_high)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range events {
		if _, err := stmt.Exec(runID, i, e.Time, e.IDLow, e.IDHigh); err != nil {
			return 0, fmt.Errorf("storage: cannot save collision %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return runID, nil
}

// Runs retrieves archived runs, most recent first.
func (s *Store) Runs(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, duration, time_step, body_count, event_count, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Source, &e.Duration, &e.TimeStep, &e.BodyCount, &e.EventCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Run retrieves a single archived run by ID. Returns nil if not found.
func (s *Store) Run(runID int64) (*RunEntry, error) {
	var e RunEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, source, duration, time_step, body_count, event_count, created_at
		 FROM runs
		 WHERE id = ?`,
		runID,
	).Scan(&e.ID, &e.Source, &e.Duration, &e.TimeStep, &e.BodyCount, &e.EventCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}

// RunEvents retrieves the full event log of an archived run in its original
// order.
func (s *Store) RunEvents(runID int64) ([]sim.Event, error) {
	rows, err := s.db.Query(
		`SELECT t, id_low, id_high
		 FROM collisions
		 WHERE run_id = ?
		 ORDER BY ordinal`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query collisions: %w", err)
	}
	defer rows.Close()

	var events []sim.Event
	for rows.Next() {
		var e sim.Event
		if err := rows.Scan(&e.Time, &e.IDLow, &e.IDHigh); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// DeleteRun removes a run and its collisions.
func (s *Store) DeleteRun(runID int64) error {
	// The cascade is explicit: modernc sqlite connections do not enable
	// foreign_keys by default.
	if _, err := s.db.Exec("DELETE FROM collisions WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("storage: cannot delete collisions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE id = ?", runID); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
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
