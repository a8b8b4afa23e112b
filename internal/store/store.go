// Package store persists analysis runs and per-trace series statistics to
// SQLite so successive trajectory recordings can be compared later.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/armdiag/linktrace/internal/metrics"
)

const schema = `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		run_id      TEXT PRIMARY KEY,
		data_dir    TEXT NOT NULL,
		run_time    TEXT NOT NULL,
		trace_count INTEGER
	);

	CREATE TABLE IF NOT EXISTS trace_series_stats (
		run_id    TEXT,
		trace     TEXT,
		series    TEXT,
		samples   INTEGER,
		min_ms    REAL,
		max_ms    REAL,
		mean_ms   REAL,
		stddev_ms REAL,
		p50_ms    REAL,
		p95_ms    REAL,
		FOREIGN KEY (run_id) REFERENCES analysis_runs(run_id)
	);
`

// Store wraps the run database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts one analysis run and returns its generated id.
func (s *Store) RecordRun(dataDir string, traceCount int) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO analysis_runs (run_id, data_dir, run_time, trace_count)
		VALUES (?, ?, ?, ?)`,
		runID, dataDir, time.Now().Format(time.RFC3339), traceCount,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return runID, nil
}

// RecordSeriesStats inserts the summary of one derived series of one trace.
func (s *Store) RecordSeriesStats(runID, traceName, series string, st metrics.Stats) error {
	_, err := s.db.Exec(`
		INSERT INTO trace_series_stats
		(run_id, trace, series, samples, min_ms, max_ms, mean_ms, stddev_ms, p50_ms, p95_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, traceName, series, st.Samples,
		st.MinMs, st.MaxMs, st.MeanMs, st.StdDevMs, st.P50Ms, st.P95Ms,
	)
	if err != nil {
		return fmt.Errorf("insert series stats: %w", err)
	}
	return nil
}

// SeriesStatsCount returns the number of stats rows recorded for a run.
func (s *Store) SeriesStatsCount(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM trace_series_stats WHERE run_id = ?`, runID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count series stats: %w", err)
	}
	return n, nil
}
