// Package journal keeps an optional local SQLite record of engine
// runs: which schedule was tried, whether it was feasible, how many
// positions stayed undetermined and, on conflict, the exact record.
// It exists so long audit sessions leave a queryable trail; the engine
// never depends on it.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded run.
type Entry struct {
	RunID        string
	Kind         string // "decrypt" or "verify"
	Schedule     string // compact schedule summary
	Feasible     bool
	Undetermined int    // undetermined positions (decrypt) or 0
	Conflict     string // conflict detail, empty when feasible
	CreatedAt    time.Time
}

// Journal is a SQLite-backed run log.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure journal: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure journal: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id       TEXT PRIMARY KEY,
			kind         TEXT NOT NULL,
			schedule     TEXT NOT NULL,
			feasible     INTEGER NOT NULL,
			undetermined INTEGER NOT NULL,
			conflict     TEXT NOT NULL DEFAULT '',
			created_at   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database handle.
func (j *Journal) Close() error { return j.db.Close() }

// Record inserts a run, assigning a fresh run id and timestamp when
// absent, and returns the run id.
func (j *Journal) Record(e Entry) (string, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.Exec(
		`INSERT INTO runs (run_id, kind, schedule, feasible, undetermined, conflict, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Kind, e.Schedule, boolToInt(e.Feasible), e.Undetermined, e.Conflict,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return e.RunID, nil
}

// Recent returns up to limit runs, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT run_id, kind, schedule, feasible, undetermined, conflict, created_at
		 FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var feasible int
		var created string
		if err := rows.Scan(&e.RunID, &e.Kind, &e.Schedule, &feasible, &e.Undetermined, &e.Conflict, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.Feasible = feasible != 0
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
