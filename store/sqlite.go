package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/resumebase/visitcount/utils"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite as the backend, for local runs
// that want persistence without AWS.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	// Only create parent directories if not using in-memory SQLite (":memory:").
	if dsn != ":memory:" && dsn != "" {
		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, utils.Errorf("failed to create db directory %q: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqlStmt := `
CREATE TABLE IF NOT EXISTS counters (
	id TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, utils.Errorf("failed to create counters table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetCount(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count FROM counters WHERE id = ?`, key).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) PutCount(ctx context.Context, key string, count int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO counters (id, count) VALUES (?, ?)
ON CONFLICT(id) DO UPDATE SET count = excluded.count`, key, count)
	return err
}

// AddCount relies on the upsert being a single statement, so concurrent
// increments serialize inside SQLite rather than in this process.
func (s *SQLiteStore) AddCount(ctx context.Context, key string, delta int64) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
INSERT INTO counters (id, count) VALUES (?, ?)
ON CONFLICT(id) DO UPDATE SET count = count + excluded.count
RETURNING count`, key, delta).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
