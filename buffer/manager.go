// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns the registry of live playout buffers, one per enqueued
// passage. Allocation and removal happen on the engine's control path
// at passage boundaries; the manager never touches a buffer's frames
// and holds only enough state to answer statistics queries.
type Manager struct {
	cfg Config
	log zerolog.Logger

	mtx     sync.Mutex
	buffers map[uuid.UUID]*state
}

// NewManager creates a manager that allocates buffers with the given
// configuration. Zero config fields take the package defaults.
func NewManager(cfg Config, logger zerolog.Logger) *Manager {
	return &Manager{
		cfg:     cfg.withDefaults(),
		log:     logger.With().Str("component", "buffer-manager").Logger(),
		buffers: make(map[uuid.UUID]*state),
	}
}

// Allocate constructs the playout buffer for a passage and splits it
// into its two capability halves. Each passage id may be allocated
// exactly once; a second call for the same id indicates a bookkeeping
// bug in the caller and returns ErrAlreadyAllocated.
func (m *Manager) Allocate(id uuid.UUID) (*Producer, *Consumer, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if _, ok := m.buffers[id]; ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrAlreadyAllocated, id)
	}

	prod, cons, err := New(m.cfg)
	if err != nil {
		return nil, nil, err
	}
	m.buffers[id] = prod.s

	m.log.Debug().
		Stringer("passage", id).
		Int("capacity", m.cfg.Capacity).
		Int("headroom", m.cfg.Headroom).
		Int("resume_hysteresis", m.cfg.ResumeHysteresis).
		Msg("allocated playout buffer")

	return prod, cons, nil
}

// Remove drops the manager's reference to a passage's buffer. The
// storage itself is freed once the producer and consumer handles are
// also gone; callers never race a free against an in-flight Push or
// Pop.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	s, ok := m.buffers[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAllocated, id)
	}
	delete(m.buffers, id)

	st := s.stats()
	m.log.Debug().
		Stringer("passage", id).
		Uint64("pushed", st.TotalPushed).
		Uint64("popped", st.TotalPopped).
		Int("remaining", st.Len).
		Msg("removed playout buffer")

	return nil
}

// Stats returns a snapshot of the counters for a passage's buffer.
func (m *Manager) Stats(id uuid.UUID) (Stats, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	s, ok := m.buffers[id]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %s", ErrNotAllocated, id)
	}
	return s.stats(), nil
}

// Passages returns the ids of all currently allocated buffers.
func (m *Manager) Passages() []uuid.UUID {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	ids := make([]uuid.UUID, 0, len(m.buffers))
	for id := range m.buffers {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of allocated buffers.
func (m *Manager) Len() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.buffers)
}
