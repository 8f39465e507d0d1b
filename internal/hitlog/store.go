// Package hitlog persists raycast query results so batch runs can be
// compared later. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package hitlog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var ErrRunNotFound = errors.New("hitlog: run not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one batch of queries against a scene.
type Run struct {
	ID        uuid.UUID
	Scene     string
	CreatedAt time.Time
	Queries   int
	Hits      int
}

// Record is the outcome of a single ray query. Object and Collider are empty
// on a miss.
type Record struct {
	Query     int
	Origin    [3]float32
	Direction [3]float32
	Hit       bool
	Object    string
	Collider  string
	Distance  float32
	Point     [3]float32
	Normal    [3]float32
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("hitlog: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("hitlog: cannot open database: %w", err)
	}
	// a single connection keeps :memory: databases alive across calls
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("hitlog: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("hitlog: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			scene TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS hits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			query_index INTEGER NOT NULL,
			ox REAL NOT NULL, oy REAL NOT NULL, oz REAL NOT NULL,
			dx REAL NOT NULL, dy REAL NOT NULL, dz REAL NOT NULL,
			hit INTEGER NOT NULL,
			object TEXT NOT NULL DEFAULT '',
			collider TEXT NOT NULL DEFAULT '',
			distance REAL NOT NULL DEFAULT 0,
			px REAL NOT NULL DEFAULT 0, py REAL NOT NULL DEFAULT 0, pz REAL NOT NULL DEFAULT 0,
			nx REAL NOT NULL DEFAULT 0, ny REAL NOT NULL DEFAULT 0, nz REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_hits_run ON hits(run_id, query_index);
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

// StartRun registers a new run for scene and returns it.
func (s *Store) StartRun(scene string) (Run, error) {
	run := Run{
		ID:        uuid.New(),
		Scene:     scene,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		"INSERT INTO runs (id, scene, created_at) VALUES (?, ?, ?)",
		run.ID.String(), run.Scene, run.CreatedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("hitlog: cannot start run: %w", err)
	}
	return run, nil
}

// Record appends the records to run inside one transaction.
func (s *Store) Record(runID uuid.UUID, records ...Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("hitlog: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO hits (run_id, query_index, ox, oy, oz, dx, dy, dz, hit, object, collider, distance, px, py, pz, nx, ny, nz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("hitlog: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			runID.String(), r.Query,
			r.Origin[0], r.Origin[1], r.Origin[2],
			r.Direction[0], r.Direction[1], r.Direction[2],
			r.Hit, r.Object, r.Collider, r.Distance,
			r.Point[0], r.Point[1], r.Point[2],
			r.Normal[0], r.Normal[1], r.Normal[2],
		)
		if err != nil {
			return fmt.Errorf("hitlog: cannot record query %d: %w", r.Query, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("hitlog: commit: %w", err)
	}
	return nil
}

// Runs returns the most recent runs first, with query and hit counts.
func (s *Store) Runs(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.scene, r.created_at, COUNT(h.id), COALESCE(SUM(h.hit), 0)
		FROM runs r LEFT JOIN hits h ON h.run_id = r.id
		GROUP BY r.id
		ORDER BY r.rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("hitlog: cannot list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var id string
		if err := rows.Scan(&id, &r.Scene, &r.CreatedAt, &r.Queries, &r.Hits); err != nil {
			return nil, fmt.Errorf("hitlog: cannot scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("hitlog: bad run id %q: %w", id, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Records returns the records of a run in query order.
func (s *Store) Records(runID uuid.UUID) ([]Record, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE id = ?", runID.String()).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("hitlog: cannot look up run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := s.db.Query(`
		SELECT query_index, ox, oy, oz, dx, dy, dz, hit, object, collider, distance, px, py, pz, nx, ny, nz
		FROM hits WHERE run_id = ? ORDER BY query_index, id`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("hitlog: cannot list records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		err := rows.Scan(&r.Query,
			&r.Origin[0], &r.Origin[1], &r.Origin[2],
			&r.Direction[0], &r.Direction[1], &r.Direction[2],
			&r.Hit, &r.Object, &r.Collider, &r.Distance,
			&r.Point[0], &r.Point[1], &r.Point[2],
			&r.Normal[0], &r.Normal[1], &r.Normal[2],
		)
		if err != nil {
			return nil, fmt.Errorf("hitlog: cannot scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
