// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/crossmix/buffer"
	"github.com/ik5/crossmix/pcm"
)

// PassageID identifies a passage across the mixer, the buffer manager
// and the engine's queue.
type PassageID = uuid.UUID

type stateKind int

const (
	stateIdle stateKind = iota
	stateSingle
	stateCrossfading
)

// state is one immutable configuration of the mixer. Transitions
// install a fresh value behind the atomic pointer; the fields of an
// installed state are never mutated.
type state struct {
	kind stateKind

	current   *buffer.Consumer
	currentID PassageID

	// Populated only while crossfading.
	next   *buffer.Consumer
	nextID PassageID
}

var idle = &state{kind: stateIdle}

// Mixer produces one output frame per call from whatever passages are
// currently active. See the package documentation for the state
// machine and threading rules.
type Mixer struct {
	state atomic.Pointer[state]

	// One-shot slot holding the id of the passage whose crossfade most
	// recently finished. Swapped to nil on consumption.
	completed atomic.Pointer[PassageID]

	log zerolog.Logger
}

// New returns an idle mixer.
func New(logger zerolog.Logger) *Mixer {
	m := &Mixer{
		log: logger.With().Str("component", "mixer").Logger(),
	}
	m.state.Store(idle)
	return m
}

// StartPassage makes the given buffer the sole source of output,
// replacing any prior buffer. The normal caller is in Idle or Single;
// calling during a crossfade abandons both active passages.
func (m *Mixer) StartPassage(c *buffer.Consumer, id PassageID) {
	m.state.Store(&state{kind: stateSingle, current: c, currentID: id})
	m.log.Debug().Stringer("passage", id).Msg("passage started")
}

// StartCrossfade begins draining next alongside the current passage.
// The mixer must be in Single state; anything else returns
// ErrNotSingle.
func (m *Mixer) StartCrossfade(next *buffer.Consumer, id PassageID) error {
	for {
		st := m.state.Load()
		if st.kind != stateSingle {
			return fmt.Errorf("%w: %s", ErrNotSingle, stateName(st.kind))
		}

		cross := &state{
			kind:      stateCrossfading,
			current:   st.current,
			currentID: st.currentID,
			next:      next,
			nextID:    id,
		}
		if m.state.CompareAndSwap(st, cross) {
			m.log.Debug().
				Stringer("from", st.currentID).
				Stringer("to", id).
				Msg("crossfade started")
			return nil
		}
		// The output thread finished a concurrent transition; re-read.
	}
}

// Stop forces Idle from any state and clears any pending completion
// signal, so the engine never receives a stale id for a passage it no
// longer tracks. Stop is immediate; it does not wait for decoders.
func (m *Mixer) Stop() {
	m.state.Store(idle)
	m.completed.Store(nil)
	m.log.Debug().Msg("mixer stopped")
}

// NextFrame returns the next output frame. Called once per sample from
// the audio callback; it never blocks and never errors.
func (m *Mixer) NextFrame() pcm.Frame {
	st := m.state.Load()

	switch st.kind {
	case stateIdle:
		return pcm.Zero

	case stateSingle:
		// On exhaustion the pop falls back to the last cached frame;
		// the mixer holds state until the engine transitions it.
		f, _ := st.current.Pop()
		return f

	default: // stateCrossfading
		if st.current.Exhausted() {
			single := &state{kind: stateSingle, current: st.next, currentID: st.nextID}
			if !m.state.CompareAndSwap(st, single) {
				// A control call replaced the state underneath us;
				// defer to whatever it installed.
				return m.NextFrame()
			}

			out := st.currentID
			m.completed.Store(&out)

			f, _ := st.next.Pop()
			return f
		}

		cur, _ := st.current.Pop()
		nxt, _ := st.next.Pop()
		return cur.Add(nxt)
	}
}

// TakeCrossfadeCompleted consumes the one-shot completion slot. It
// returns the outgoing passage's id exactly once per finished
// crossfade; subsequent calls report false until the next transition.
func (m *Mixer) TakeCrossfadeCompleted() (PassageID, bool) {
	p := m.completed.Swap(nil)
	if p == nil {
		return uuid.Nil, false
	}
	return *p, true
}

// CurrentPassage returns the id of the passage driving output, or
// false when idle. During a crossfade this is the outgoing passage.
func (m *Mixer) CurrentPassage() (PassageID, bool) {
	st := m.state.Load()
	if st.kind == stateIdle {
		return uuid.Nil, false
	}
	return st.currentID, true
}

// NextPassage returns the incoming passage's id, or false when no
// crossfade is in progress.
func (m *Mixer) NextPassage() (PassageID, bool) {
	st := m.state.Load()
	if st.kind != stateCrossfading {
		return uuid.Nil, false
	}
	return st.nextID, true
}

// IsCrossfading reports whether two passages are currently being
// summed.
func (m *Mixer) IsCrossfading() bool {
	return m.state.Load().kind == stateCrossfading
}

func stateName(k stateKind) string {
	switch k {
	case stateIdle:
		return "idle"
	case stateSingle:
		return "single"
	case stateCrossfading:
		return "crossfading"
	default:
		return "unknown"
	}
}
