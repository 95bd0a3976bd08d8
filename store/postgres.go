package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/resumebase/visitcount/utils"
)

// PostgresStore implements Store using PostgreSQL as the backend.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, utils.Errorf("postgres driver requires a DSN")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	sqlStmt := `
CREATE TABLE IF NOT EXISTS counters (
	id TEXT PRIMARY KEY,
	count BIGINT NOT NULL
);`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, utils.Errorf("failed to create counters table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetCount(ctx context.Context, key string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT count FROM counters WHERE id = $1`, key).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PostgresStore) PutCount(ctx context.Context, key string, count int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO counters (id, count) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET count = EXCLUDED.count`, key, count)
	return err
}

func (s *PostgresStore) AddCount(ctx context.Context, key string, delta int64) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
INSERT INTO counters (id, count) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET count = counters.count + EXCLUDED.count
RETURNING count`, key, delta).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
