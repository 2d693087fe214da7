package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"framemill/internal/config"
	"framemill/internal/task"
)

const schema = `
CREATE TABLE IF NOT EXISTS task_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_id INTEGER NOT NULL,
    operation TEXT NOT NULL,
    output_file TEXT NOT NULL,
    status TEXT NOT NULL,
    error_message TEXT NOT NULL DEFAULT '',
    progress REAL NOT NULL DEFAULT 0,
    duration_seconds REAL NOT NULL DEFAULT 0,
    recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_task_history_recorded_at
    ON task_history(recorded_at);
`

// Entry is one archived task.
type Entry struct {
	ID           int64
	TaskID       int64
	Operation    string
	OutputFile   string
	Status       string
	ErrorMessage string
	Progress     float64
	Duration     time.Duration
	RecordedAt   time.Time
}

// Store manages the history database. A file lock next to the database
// enforces a single writer process.
type Store struct {
	db         *sql.DB
	path       string
	lock       *flock.Flock
	maxEntries int
}

// Open initializes or connects to the history database configured in cfg.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.HistoryDBPath()
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock history db: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("history db %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db, path: dbPath, lock: lock, maxEntries: cfg.History.MaxEntries}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database and the writer lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var first error
	if s.db != nil {
		first = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Record archives a terminal task snapshot and prunes old entries beyond the
// configured maximum. Non-terminal snapshots are rejected.
func (s *Store) Record(ctx context.Context, snap task.Snapshot) error {
	if !snap.Status.IsTerminal() {
		return fmt.Errorf("record task %d: status %s is not terminal", snap.ID, snap.Status)
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO task_history
            (task_id, operation, output_file, status, error_message, progress, duration_seconds, recorded_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID,
		snap.Operation.String(),
		snap.OutputFile,
		snap.Status.String(),
		snap.ErrorMessage,
		snap.Progress,
		snap.CompletionTime.Seconds(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record task %d: %w", snap.ID, err)
	}
	return s.prune(ctx)
}

func (s *Store) prune(ctx context.Context) error {
	if s.maxEntries <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM task_history
         WHERE id NOT IN (SELECT id FROM task_history ORDER BY id DESC LIMIT ?)`,
		s.maxEntries,
	)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, task_id, operation, output_file, status, error_message, progress, duration_seconds, recorded_at
              FROM task_history ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			seconds  float64
			recorded string
		)
		if err := rows.Scan(&e.ID, &e.TaskID, &e.Operation, &e.OutputFile, &e.Status, &e.ErrorMessage, &e.Progress, &seconds, &recorded); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Duration = time.Duration(seconds * float64(time.Second))
		if ts, err := time.Parse(time.RFC3339Nano, recorded); err == nil {
			e.RecordedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}

// Clear deletes every entry and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM task_history`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}
