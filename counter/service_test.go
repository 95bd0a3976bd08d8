package counter

import (
	"context"
	"errors"
	"testing"

	"github.com/resumebase/visitcount/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultStore wraps a memory store and fails selected operations.
type faultStore struct {
	*store.MemoryStore
	addErr error
	putErr error
	getErr error
}

func (f *faultStore) AddCount(ctx context.Context, key string, delta int64) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	return f.MemoryStore.AddCount(ctx, key, delta)
}

func (f *faultStore) PutCount(ctx context.Context, key string, count int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.MemoryStore.PutCount(ctx, key, count)
}

func (f *faultStore) GetCount(ctx context.Context, key string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	return f.MemoryStore.GetCount(ctx, key)
}

func TestGet_SeedsZeroOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st, "visitor-count")

	n, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// The record now exists; a second Get reads it rather than re-seeding.
	stored, err := st.GetCount(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored)

	n, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestGet_ReturnsExistingCount(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.PutCount(ctx, "main", 42))
	svc := NewService(st, "visitor-count")

	n, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestGet_ReadFaultPropagates(t *testing.T) {
	st := &faultStore{MemoryStore: store.NewMemoryStore(), getErr: errors.New("throttled")}
	svc := NewService(st, "visitor-count")

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	var readErr *StoreReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestIncrement_Monotonic(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.PutCount(ctx, "main", 42))
	svc := NewService(st, "visitor-count")

	n, err := svc.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(43), n)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(43), got)
}

func TestIncrement_CreatesOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st, "visitor-count")

	n, err := svc.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stored, err := st.GetCount(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored)
}

func TestIncrement_FallbackCreateOnAddFailure(t *testing.T) {
	ctx := context.Background()
	st := &faultStore{MemoryStore: store.NewMemoryStore(), addErr: errors.New("add not supported")}
	svc := NewService(st, "visitor-count")

	n, err := svc.Increment(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stored, err := st.GetCount(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored)
}

func TestIncrement_FallbackFailurePropagates(t *testing.T) {
	st := &faultStore{
		MemoryStore: store.NewMemoryStore(),
		addErr:      errors.New("add failed"),
		putErr:      errors.New("put failed"),
	}
	svc := NewService(st, "visitor-count")

	_, err := svc.Increment(context.Background())
	require.Error(t, err)
	var createErr *StoreCreateError
	assert.True(t, errors.As(err, &createErr))
	var writeErr *StoreWriteError
	assert.True(t, errors.As(err, &writeErr))
}

func TestHealth(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		svc := NewService(store.NewMemoryStore(), "visitor-count")
		h := svc.Health(context.Background())
		assert.Equal(t, "healthy", h.Status)
		assert.Equal(t, "visitor-count", h.Table)
		assert.Empty(t, h.Error)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		st := &pingFaultStore{MemoryStore: store.NewMemoryStore()}
		svc := NewService(st, "visitor-count")
		h := svc.Health(context.Background())
		assert.Equal(t, "unhealthy", h.Status)
		assert.NotEmpty(t, h.Error)
	})
}

type pingFaultStore struct {
	*store.MemoryStore
}

func (p *pingFaultStore) Ping(ctx context.Context) error {
	return errors.New("table unreachable")
}
