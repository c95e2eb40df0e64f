// Package storage provides a SQLite journal of recorded simulation runs.
// Each run keeps the seed and options needed to replay it plus the state
// hashes it produced, so determinism can be checked across builds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Checkpoint is a state hash recorded at a tick.
type Checkpoint struct {
	Tick uint64
	Hash uint64
}

// RunRecord is one recorded headless run.
type RunRecord struct {
	ID              int64
	Seed            int64
	Ticks           uint64
	CheckpointEvery int
	MaxFrameMS      int
	FinalHash       uint64
	Kills           int
	Deaths          int
	Resets          int
	Checkpoints     []Checkpoint
	CreatedAt       time.Time
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
// Hashes are stored as their signed 64-bit reinterpretation.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			checkpoint_every INTEGER NOT NULL DEFAULT 0,
			max_frame_ms INTEGER NOT NULL DEFAULT 0,
			final_hash INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);

		CREATE TABLE IF NOT EXISTS checkpoints (
			run_id INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			hash INTEGER NOT NULL,
			PRIMARY KEY (run_id, tick)
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

// SaveRun records a run and its checkpoints in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.Exec(
		`INSERT INTO runs
		 (seed, ticks, checkpoint_every, max_frame_ms, final_hash, kills, deaths, resets)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, toInt(r.Ticks), r.CheckpointEvery, r.MaxFrameMS, toInt(r.FinalHash),
		r.Kills, r.Deaths, r.Resets,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO checkpoints (run_id, tick, hash) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare checkpoint insert: %w", err)
	}
	defer stmt.Close()

	for _, cp := range r.Checkpoints {
		if _, err := stmt.Exec(id, toInt(cp.Tick), toInt(cp.Hash)); err != nil {
			return 0, fmt.Errorf("storage: cannot save checkpoint at tick %d: %w", cp.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Run retrieves a run with its checkpoints in tick order.
func (s *Store) Run(id int64) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, ticks, checkpoint_every, max_frame_ms, final_hash,
		        kills, deaths, resets, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT tick, hash FROM checkpoints WHERE run_id = ? ORDER BY tick",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoints: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tick, hash int64
		if err := rows.Scan(&tick, &hash); err != nil {
			return nil, fmt.Errorf("storage: cannot scan checkpoint: %w", err)
		}
		r.Checkpoints = append(r.Checkpoints, Checkpoint{Tick: toUint(tick), Hash: toUint(hash)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return r, nil
}

// RecentRuns retrieves the most recent runs without their checkpoints.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, ticks, checkpoint_every, max_frame_ms, final_hash,
		        kills, deaths, resets, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its checkpoints.
func (s *Store) DeleteRun(id int64) error {
	if _, err := s.db.Exec("DELETE FROM checkpoints WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete checkpoints: %w", err)
	}
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*RunRecord, error) {
	var r RunRecord
	var ticks, hash int64
	var createdAt any

	if err := sc.Scan(
		&r.ID,
		&r.Seed,
		&ticks,
		&r.CheckpointEvery,
		&r.MaxFrameMS,
		&hash,
		&r.Kills,
		&r.Deaths,
		&r.Resets,
		&createdAt,
	); err != nil {
		return nil, err
	}

	r.Ticks = toUint(ticks)
	r.FinalHash = toUint(hash)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return &r, nil
}

func toInt(v uint64) int64 {
	return int64(v) //#nosec G115 -- bit-preserving round trip with toUint
}

func toUint(v int64) uint64 {
	return uint64(v) //#nosec G115 -- bit-preserving round trip with toInt
}
