package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_GetCount_NotFound(t *testing.T) {
	m := NewMemoryStore()
	_, err := m.GetCount(context.Background(), "main")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_AddCount_CreatesAndIncrements(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	n, err := m.AddCount(ctx, "main", 1)
	if err != nil {
		t.Fatalf("AddCount failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 after first add, got %d", n)
	}

	n, err = m.AddCount(ctx, "main", 1)
	if err != nil {
		t.Fatalf("AddCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 after second add, got %d", n)
	}

	got, err := m.GetCount(ctx, "main")
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if got != 2 {
		t.Errorf("expected stored count 2, got %d", got)
	}
}

func TestMemoryStore_PutCount_Overwrites(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if err := m.PutCount(ctx, "main", 42); err != nil {
		t.Fatalf("PutCount failed: %v", err)
	}
	n, err := m.GetCount(ctx, "main")
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}
}
