package store

import (
	"context"
	"errors"
	"strings"

	"github.com/resumebase/visitcount/config"
	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/utils"
)

// ErrNotFound is returned by GetCount when no record exists for the key.
var ErrNotFound = errors.New("counter record not found")

// Store is the key-value collaborator holding the counter record. AddCount
// must be atomic on the store side; callers never read-modify-write.
type Store interface {
	GetCount(ctx context.Context, key string) (int64, error)
	PutCount(ctx context.Context, key string, count int64) error
	AddCount(ctx context.Context, key string, delta int64) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// NewFromConfig constructs the store selected by cfg.Driver.
func NewFromConfig(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case constants.DriverDynamo:
		return NewDynamoStore(ctx, cfg.Table, cfg.Region)
	case constants.DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = config.DefaultSQLiteDSN
		}
		return NewSQLiteStore(dsn)
	case constants.DriverPostgres:
		return NewPostgresStore(cfg.DSN)
	case constants.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, utils.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}
