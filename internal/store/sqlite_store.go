package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"tapecalc/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	expression TEXT NOT NULL,
	result TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_measurements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	label TEXT NOT NULL,
	value TEXT NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
`

// SQLiteStore keeps history and saved measurements in a SQLite database.
// Timestamps are stored as Unix nanoseconds.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
	mu  sync.RWMutex
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("sqlite store opened", "path", path)
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// ---------- History ----------

func (s *SQLiteStore) AddHistory(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO history (expression, result, created_at) VALUES (?, ?, ?)",
		in.Expression, in.Result, now.UnixNano(),
	)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return domain.HistoryEntry{
		ID:         domain.HistoryID(id),
		Expression: in.Expression,
		Result:     in.Result,
		CreatedAt:  time.Unix(0, now.UnixNano()).UTC(),
	}, nil
}

func (s *SQLiteStore) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, expression, result, created_at FROM history ORDER BY id DESC LIMIT ?",
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ns int64
		)
		if err := rows.Scan(&e.ID, &e.Expression, &e.Result, &ns); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM history")
	return err
}

// ---------- Saved measurements ----------

func (s *SQLiteStore) AddSaved(ctx context.Context, in domain.NewSavedMeasurement) (domain.SavedMeasurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO saved_measurements (label, value, created_at) VALUES (?, ?, ?)",
		in.Label, in.Value, now.UnixNano(),
	)
	if err != nil {
		return domain.SavedMeasurement{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.SavedMeasurement{}, err
	}
	return domain.SavedMeasurement{
		ID:        domain.MeasurementID(id),
		Label:     in.Label,
		Value:     in.Value,
		CreatedAt: time.Unix(0, now.UnixNano()).UTC(),
	}, nil
}

func (s *SQLiteStore) ListSaved(ctx context.Context) ([]domain.SavedMeasurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, label, value, created_at FROM saved_measurements ORDER BY id DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavedMeasurement{}
	for rows.Next() {
		var (
			m  domain.SavedMeasurement
			ns int64
		)
		if err := rows.Scan(&m.ID, &m.Label, &m.Value, &ns); err != nil {
			return nil, err
		}
		m.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteSaved(ctx context.Context, id domain.MeasurementID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM saved_measurements WHERE id = ?", int64(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

var _ domain.Store = (*SQLiteStore)(nil)
