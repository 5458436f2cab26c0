// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestManagerAllocateOnce(t *testing.T) {
	m := NewManager(testConfig(), zerolog.Nop())
	id := uuid.New()

	p, c, err := m.Allocate(id)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if p == nil || c == nil {
		t.Fatal("Allocate returned nil handle")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	// Allocating the same passage twice is a caller bug, not an
	// idempotent lookup.
	if _, _, err := m.Allocate(id); !errors.Is(err, ErrAlreadyAllocated) {
		t.Errorf("second Allocate = %v, want ErrAlreadyAllocated", err)
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(testConfig(), zerolog.Nop())
	id := uuid.New()

	if _, _, err := m.Allocate(id); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(id); err != nil {
		t.Errorf("Remove: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", m.Len())
	}

	if err := m.Remove(id); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("Remove of missing id = %v, want ErrNotAllocated", err)
	}

	// The id can be reused after removal.
	if _, _, err := m.Allocate(id); err != nil {
		t.Errorf("Allocate after Remove: %v", err)
	}
}

func TestManagerHandlesOutliveRemove(t *testing.T) {
	m := NewManager(testConfig(), zerolog.Nop())
	id := uuid.New()

	p, c, err := m.Allocate(id)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(id); err != nil {
		t.Fatal(err)
	}

	// The split handles keep the storage alive; pushing and popping
	// after removal must still work.
	want := frame(0.25)
	if err := p.Push(want); err != nil {
		t.Fatalf("Push after Remove: %v", err)
	}
	got, ok := c.Pop()
	if !ok || got != want {
		t.Errorf("Pop after Remove = %v, %v; want %v, true", got, ok, want)
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testConfig(), zerolog.Nop())
	id := uuid.New()

	p, _, err := m.Allocate(id)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		p.Push(frame(float32(i)))
	}

	st, err := m.Stats(id)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Len != 5 || st.TotalPushed != 5 {
		t.Errorf("Stats = %+v, want Len 5, TotalPushed 5", st)
	}

	if _, err := m.Stats(uuid.New()); !errors.Is(err, ErrNotAllocated) {
		t.Errorf("Stats of missing id = %v, want ErrNotAllocated", err)
	}
}
