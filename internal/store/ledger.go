// Package store persists headless run telemetry to a local SQLite file so
// sweeps over seeds and parameters can be compared afterwards.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"cube-planet/internal/sims/planet"
)

// Entry is one recorded run.
type Entry struct {
	ID         int64
	RecordedAt time.Time
	Label      string
	Params     planet.Params
	Result     planet.RunResult
}

// Ledger appends run results to the runs table.
type Ledger struct {
	db *sql.DB
}

// Open creates the database file and its schema when missing.
func Open(dbPath string) (*Ledger, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}
	return &Ledger{db: db}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at DATETIME NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			size INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			peak_molten REAL NOT NULL,
			peak_gas REAL NOT NULL,
			water_balance REAL NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			params_json TEXT NOT NULL,
			result_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_label ON runs(label);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores one run and returns its row id.
func (l *Ledger) Record(ctx context.Context, label string, params planet.Params, result planet.RunResult) (int64, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal params: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO runs (recorded_at, label, seed, size, ticks, peak_molten, peak_gas, water_balance, error, params_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := l.db.ExecContext(ctx, query,
		time.Now().UTC(), label, result.Seed, result.Size, result.Ticks,
		result.PeakMolten, result.PeakGas, result.WaterBalance(), result.Err,
		string(paramsJSON), string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return res.LastInsertId()
}

// Count returns the number of stored runs.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// List returns the runs with the given label, oldest first. An empty label
// lists everything.
func (l *Ledger) List(ctx context.Context, label string) ([]Entry, error) {
	query := `SELECT id, recorded_at, label, params_json, result_json FROM runs ORDER BY id ASC`
	args := []any{}
	if label != "" {
		query = `SELECT id, recorded_at, label, params_json, result_json FROM runs WHERE label = ? ORDER BY id ASC`
		args = append(args, label)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var paramsStr, resultStr string
		if err := rows.Scan(&e.ID, &e.RecordedAt, &e.Label, &paramsStr, &resultStr); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(paramsStr), &e.Params); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(resultStr), &e.Result); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Best returns the run with the lowest absolute water balance among the
// error-free runs with the given label.
func (l *Ledger) Best(ctx context.Context, label string) (Entry, bool, error) {
	entries, err := l.List(ctx, label)
	if err != nil {
		return Entry{}, false, err
	}
	var best Entry
	found := false
	for _, e := range entries {
		if e.Result.Err != "" {
			continue
		}
		if !found || abs(e.Result.WaterBalance()) < abs(best.Result.WaterBalance()) {
			best = e
			found = true
		}
	}
	return best, found, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
