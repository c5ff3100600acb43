// Package storage records scene evaluation runs in SQLite.
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

// DefaultPath is where the CLI keeps its history database.
const DefaultPath = "~/.shapekit/history.db"

// Store manages the SQLite database connection for eval history.
type Store struct {
	db *sql.DB
}

// ResultRecord is the stored outcome of one query in a run.
type ResultRecord struct {
	Query string
	OK    bool
	Text  string
}

// RunEntry is one recorded evaluation of a scene.
type RunEntry struct {
	ID        int64
	Scene     string
	Queries   int
	Failed    int
	CreatedAt time.Time
}

// SceneStats aggregates the runs recorded for a scene.
type SceneStats struct {
	Scene     string
	Runs      int
	FailedAny int // runs with at least one failed query
	LastRun   time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			queries INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene, id DESC);

		CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			query TEXT NOT NULL,
			ok INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);
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

// SaveRun records one evaluation of sceneName and its per-query results in
// a single transaction. Returns the ID of the run.
func (s *Store) SaveRun(sceneName string, results []ResultRecord) (int64, error) {
	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		"INSERT INTO runs (scene, queries, failed) VALUES (?, ?, ?)",
		sceneName, len(results), failed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, r := range results {
		if _, err := tx.Exec(
			"INSERT INTO results (run_id, position, query, ok, text) VALUES (?, ?, ?, ?, ?)",
			id, i, r.Query, r.OK, r.Text,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs of sceneName, newest first. An empty
// sceneName lists runs of every scene.
func (s *Store) RecentRuns(sceneName string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene, queries, failed, created_at
		 FROM runs
		 WHERE ? = '' OR scene = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneName, sceneName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Scene, &e.Queries, &e.Failed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RunResults returns the stored results of a run in query order.
func (s *Store) RunResults(runID int64) ([]ResultRecord, error) {
	rows, err := s.db.Query(
		`SELECT query, ok, text FROM results WHERE run_id = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(&r.Query, &r.OK, &r.Text); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Stats returns aggregated run statistics for sceneName.
func (s *Store) Stats(sceneName string) (*SceneStats, error) {
	stats := &SceneStats{Scene: sceneName}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(failed > 0), 0), MAX(created_at)
		 FROM runs WHERE scene = ?`,
		sceneName,
	).Scan(&stats.Runs, &stats.FailedAny, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes every run of sceneName with its results.
func (s *Store) ClearRuns(sceneName string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		"DELETE FROM results WHERE run_id IN (SELECT id FROM runs WHERE scene = ?)",
		sceneName,
	); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE scene = ?", sceneName); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
