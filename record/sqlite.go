// Package record stores per-frame statistics of a field run in SQLite
package record

import (
	"database/sql"
	"path/filepath"
	"time"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/olivierh59500/particle-field-go/field"
)

const defaultBatchSize = 1000

// SQLiteRecorder buffers frame stats and writes them in batches
type SQLiteRecorder struct {
	db        *sql.DB
	statement *sql.Stmt

	path      string
	runID     string
	batchSize int
	pending   []field.FrameStats
	err       error
	closed    bool
}

// NewSQLiteRecorder opens (or creates) a database in dir named after a fresh run id
func NewSQLiteRecorder(dir string) (*SQLiteRecorder, error) {
	runID := xid.New().String()
	r := &SQLiteRecorder{
		path:      filepath.Join(dir, "particles_"+runID+".sqlite3"),
		runID:     runID,
		batchSize: defaultBatchSize,
	}

	db, err := sql.Open("sqlite3", r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", r.path)
	}
	r.db = db

	if err := r.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	r.statement, err = db.Prepare(`INSERT INTO frames
		(run_id, frame, particles, connections, reflections, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "prepare insert")
	}

	atexit.Register(func() { r.Flush() })

	return r, nil
}

func (r *SQLiteRecorder) createTables() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id     TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		label      TEXT
	)`)
	if err != nil {
		return errors.Wrap(err, "create runs table")
	}

	_, err = r.db.Exec(`CREATE TABLE IF NOT EXISTS frames (
		run_id      TEXT NOT NULL,
		frame       INTEGER NOT NULL,
		particles   INTEGER NOT NULL,
		connections INTEGER NOT NULL,
		reflections INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		PRIMARY KEY (run_id, frame)
	)`)
	if err != nil {
		return errors.Wrap(err, "create frames table")
	}
	return nil
}

// Path returns the database file
func (r *SQLiteRecorder) Path() string {
	return r.path
}

// RunID identifies this recording
func (r *SQLiteRecorder) RunID() string {
	return r.runID
}

// StartRun registers the run with a free form label
func (r *SQLiteRecorder) StartRun(label string) error {
	_, err := r.db.Exec(`INSERT INTO runs (run_id, started_at, label) VALUES (?, ?, ?)`,
		r.runID, time.Now().UnixNano(), label)
	return errors.Wrap(err, "insert run")
}

// Write buffers one frame. It matches the field frame hook signature.
func (r *SQLiteRecorder) Write(stats field.FrameStats) {
	r.pending = append(r.pending, stats)
	if len(r.pending) >= r.batchSize {
		r.Flush()
	}
}

// Flush writes all buffered frames in one transaction. The first failure is kept in Err.
func (r *SQLiteRecorder) Flush() {
	if len(r.pending) == 0 || r.err != nil || r.closed {
		return
	}

	tx, err := r.db.Begin()
	if err != nil {
		r.err = errors.Wrap(err, "begin transaction")
		return
	}
	stmt := tx.Stmt(r.statement)
	for _, s := range r.pending {
		_, err := stmt.Exec(r.runID, s.Frame, s.Particles, s.Connections, s.Reflections, s.Duration.Nanoseconds())
		if err != nil {
			tx.Rollback()
			r.err = errors.Wrapf(err, "insert frame %d", s.Frame)
			return
		}
	}
	if err := tx.Commit(); err != nil {
		r.err = errors.Wrap(err, "commit frames")
		return
	}
	r.pending = r.pending[:0]
}

// Frames reads back the recorded frames of this run in order
func (r *SQLiteRecorder) Frames() ([]field.FrameStats, error) {
	rows, err := r.db.Query(`SELECT frame, particles, connections, reflections, duration_ns
		FROM frames WHERE run_id = ? ORDER BY frame`, r.runID)
	if err != nil {
		return nil, errors.Wrap(err, "query frames")
	}
	defer rows.Close()

	var out []field.FrameStats
	for rows.Next() {
		var s field.FrameStats
		var ns int64
		if err := rows.Scan(&s.Frame, &s.Particles, &s.Connections, &s.Reflections, &ns); err != nil {
			return nil, errors.Wrap(err, "scan frame")
		}
		s.Duration = time.Duration(ns)
		out = append(out, s)
	}
	return out, errors.Wrap(rows.Err(), "read frames")
}

// Err returns the first write failure
func (r *SQLiteRecorder) Err() error {
	return r.err
}

// Close flushes and closes the database. Later calls do nothing.
func (r *SQLiteRecorder) Close() error {
	if r.closed {
		return nil
	}
	r.Flush()
	r.closed = true
	r.statement.Close()
	if r.err != nil {
		r.db.Close()
		return r.err
	}
	return errors.Wrap(r.db.Close(), "close database")
}
