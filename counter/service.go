package counter

import (
	"context"
	"errors"

	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/store"
	"github.com/resumebase/visitcount/utils"
)

// Service owns the read/increment/initialize sequence against the store.
// It keeps no state of its own between calls.
type Service struct {
	store store.Store
	table string
}

func NewService(s store.Store, table string) *Service {
	return &Service{store: s, table: table}
}

// Get returns the current visitor count, seeding the record with 0 when the
// store has none. A Get on a fresh store is therefore a write.
func (s *Service) Get(ctx context.Context) (int64, error) {
	n, err := s.store.GetCount(ctx, constants.CounterKey)
	if errors.Is(err, store.ErrNotFound) {
		utils.InfoCtx(ctx, "No visitor count record found, initializing with 0")
		if err := s.store.PutCount(ctx, constants.CounterKey, 0); err != nil {
			utils.ErrorCtx(ctx, "Error creating initial visitor count", "error", err)
			return 0, &StoreCreateError{Err: err}
		}
		return 0, nil
	}
	if err != nil {
		utils.ErrorCtx(ctx, "Error getting visitor count", "error", err)
		return 0, &StoreReadError{Err: err}
	}
	return n, nil
}

// Increment adds 1 to the count via the store's atomic add and returns the
// new value. If the add fails (a store without auto-creating adds errors on
// a missing record), one creation attempt with count=1 is made; a failure
// there propagates.
func (s *Service) Increment(ctx context.Context) (int64, error) {
	n, err := s.store.AddCount(ctx, constants.CounterKey, 1)
	if err != nil {
		writeErr := &StoreWriteError{Err: err}
		utils.ErrorCtx(ctx, "Error incrementing visitor count", "error", writeErr)
		if createErr := s.store.PutCount(ctx, constants.CounterKey, 1); createErr != nil {
			utils.ErrorCtx(ctx, "Error creating initial visitor count", "error", createErr)
			return 0, errors.Join(writeErr, &StoreCreateError{Err: createErr})
		}
		return 1, nil
	}
	return n, nil
}

// Health reports whether the store is reachable.
type Health struct {
	Status string `json:"status"`
	Table  string `json:"table"`
	Error  string `json:"error,omitempty"`
}

func (s *Service) Health(ctx context.Context) Health {
	if err := s.store.Ping(ctx); err != nil {
		return Health{
			Status: constants.HealthStatusUnhealthy,
			Table:  s.table,
			Error:  err.Error(),
		}
	}
	return Health{Status: constants.HealthStatusHealthy, Table: s.table}
}
