// Package storage keeps a history of stage attempts in SQLite.
// It uses the pure-Go modernc.org/sqlite driver so the game builds without cgo.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

// Outcome is how an attempt ended.
type Outcome string

const (
	OutcomeCleared Outcome = "cleared"
	OutcomeDied    Outcome = "died"
	OutcomeQuit    Outcome = "quit"
)

// Run is one stage attempt.
type Run struct {
	ID        int64
	Stage     string
	Outcome   Outcome
	Ticks     int
	Kills     int
	Seed      uint64
	CreatedAt time.Time
}

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent
// directories and the schema as needed. A leading ~ expands to the home
// directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage TEXT NOT NULL,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage, outcome, ticks);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records r and returns its ID. A zero CreatedAt means now.
func (s *Store) SaveRun(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (stage, outcome, ticks, kills, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Stage, string(r.Outcome), r.Ticks, r.Kills, int64(r.Seed), r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(ctx,
		`SELECT id, stage, outcome, ticks, kills, seed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestClear returns the cleared run of stage with the fewest ticks.
// ok is false when the stage was never cleared.
func (s *Store) FastestClear(ctx context.Context, stage string) (run Run, ok bool, err error) {
	runs, err := s.query(ctx,
		`SELECT id, stage, outcome, ticks, kills, seed, created_at
		 FROM runs
		 WHERE stage = ? AND outcome = ?
		 ORDER BY ticks ASC, id ASC
		 LIMIT 1`,
		stage, string(OutcomeCleared),
	)
	if err != nil || len(runs) == 0 {
		return Run{}, false, err
	}
	return runs[0], true, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			outcome   string
			seed      int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Stage, &outcome, &r.Ticks, &r.Kills, &seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Seed = uint64(seed)

		// the driver hands DATETIME back as either type
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse(timeLayout, v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
