// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/crossmix/buffer"
	"github.com/ik5/crossmix/pcm"
)

func newBuffer(t *testing.T) (*buffer.Producer, *buffer.Consumer) {
	t.Helper()

	p, c, err := buffer.New(buffer.Config{Capacity: 256, Headroom: 8, ResumeHysteresis: 16})
	if err != nil {
		t.Fatal(err)
	}
	return p, c
}

func fill(t *testing.T, p *buffer.Producer, frames ...pcm.Frame) {
	t.Helper()

	for _, f := range frames {
		if err := p.Push(f); err != nil {
			t.Fatal(err)
		}
	}
}

func TestIdleEmitsSilence(t *testing.T) {
	m := New(zerolog.Nop())

	for i := 0; i < 4; i++ {
		if f := m.NextFrame(); f != pcm.Zero {
			t.Fatalf("NextFrame() while idle = %v, want zero", f)
		}
	}

	if _, ok := m.CurrentPassage(); ok {
		t.Error("CurrentPassage() reported a passage while idle")
	}
}

func TestSinglePlaysBuffer(t *testing.T) {
	m := New(zerolog.Nop())
	p, c := newBuffer(t)
	id := uuid.New()

	want := []pcm.Frame{{Left: 0.1, Right: 0.2}, {Left: 0.3, Right: 0.4}}
	fill(t, p, want...)
	m.StartPassage(c, id)

	for i, w := range want {
		if f := m.NextFrame(); f != w {
			t.Errorf("frame %d = %v, want %v", i, f, w)
		}
	}

	got, ok := m.CurrentPassage()
	if !ok || got != id {
		t.Errorf("CurrentPassage() = %v, %v; want %v, true", got, ok, id)
	}
}

// An exhausted Single buffer holds the last frame until the engine
// transitions state; the output never drops to silence on its own.
func TestSingleHoldsLastFrameOnExhaustion(t *testing.T) {
	m := New(zerolog.Nop())
	p, c := newBuffer(t)

	last := pcm.Frame{Left: 0.5, Right: -0.5}
	fill(t, p, last)
	p.MarkDecodeComplete()
	m.StartPassage(c, uuid.New())

	if f := m.NextFrame(); f != last {
		t.Fatalf("NextFrame() = %v, want %v", f, last)
	}
	for i := 0; i < 3; i++ {
		if f := m.NextFrame(); f != last {
			t.Errorf("post-exhaustion NextFrame() = %v, want held %v", f, last)
		}
	}
	if m.IsCrossfading() {
		t.Error("IsCrossfading() = true in Single state")
	}
}

func TestStartCrossfadeRequiresSingle(t *testing.T) {
	m := New(zerolog.Nop())
	_, c := newBuffer(t)

	if err := m.StartCrossfade(c, uuid.New()); !errors.Is(err, ErrNotSingle) {
		t.Errorf("StartCrossfade while idle = %v, want ErrNotSingle", err)
	}

	p1, c1 := newBuffer(t)
	fill(t, p1, pcm.Frame{Left: 0.1})
	m.StartPassage(c1, uuid.New())

	p2, c2 := newBuffer(t)
	fill(t, p2, pcm.Frame{Left: 0.2})
	if err := m.StartCrossfade(c2, uuid.New()); err != nil {
		t.Fatalf("StartCrossfade from Single: %v", err)
	}

	_, c3 := newBuffer(t)
	if err := m.StartCrossfade(c3, uuid.New()); !errors.Is(err, ErrNotSingle) {
		t.Errorf("StartCrossfade while crossfading = %v, want ErrNotSingle", err)
	}
}

// During a crossfade the output is the plain sum of both streams; the
// envelopes were applied before buffering, so the mixer adds nothing.
func TestCrossfadeSumsPlainly(t *testing.T) {
	m := New(zerolog.Nop())

	p1, c1 := newBuffer(t)
	fill(t, p1,
		pcm.Frame{Left: 0.5, Right: 0.5},
		pcm.Frame{Left: 0.25, Right: 0.25},
	)
	m.StartPassage(c1, uuid.New())

	p2, c2 := newBuffer(t)
	fill(t, p2,
		pcm.Frame{Left: 0.125, Right: 0.25},
		pcm.Frame{Left: 0.0625, Right: 0.125},
	)
	if err := m.StartCrossfade(c2, uuid.New()); err != nil {
		t.Fatal(err)
	}
	if !m.IsCrossfading() {
		t.Fatal("IsCrossfading() = false after StartCrossfade")
	}

	want := []pcm.Frame{
		{Left: 0.625, Right: 0.75},
		{Left: 0.3125, Right: 0.375},
	}
	for i, w := range want {
		if f := m.NextFrame(); f != w {
			t.Errorf("frame %d = %v, want %v", i, f, w)
		}
	}
}

func TestCrossfadeCompletion(t *testing.T) {
	m := New(zerolog.Nop())

	outgoingID := uuid.New()
	incomingID := uuid.New()

	p1, c1 := newBuffer(t)
	fill(t, p1, pcm.Frame{Left: 0.5})
	m.StartPassage(c1, outgoingID)

	p2, c2 := newBuffer(t)
	fill(t, p2, pcm.Frame{Left: 0.25}, pcm.Frame{Left: 0.125}, pcm.Frame{Left: 0.0625})
	if err := m.StartCrossfade(c2, incomingID); err != nil {
		t.Fatal(err)
	}

	// Nothing completed yet.
	if _, ok := m.TakeCrossfadeCompleted(); ok {
		t.Fatal("completion signaled before any transition")
	}

	// First frame sums both; outgoing is then drained but not yet
	// marked complete, so the crossfade keeps running on its repeat
	// frame.
	if f := m.NextFrame(); f != (pcm.Frame{Left: 0.75}) {
		t.Fatalf("summed frame = %v, want {0.75 0}", f)
	}
	if f := m.NextFrame(); f != (pcm.Frame{Left: 0.625}) {
		t.Fatalf("underrun sum = %v, want {0.625 0}", f)
	}

	p1.MarkDecodeComplete()

	// Outgoing is now exhausted: this call transitions to Single and
	// plays the incoming stream alone.
	if f := m.NextFrame(); f != (pcm.Frame{Left: 0.0625}) {
		t.Fatalf("post-transition frame = %v, want {0.0625 0}", f)
	}
	if m.IsCrossfading() {
		t.Error("IsCrossfading() = true after transition")
	}

	cur, ok := m.CurrentPassage()
	if !ok || cur != incomingID {
		t.Errorf("CurrentPassage() = %v, want incoming %v", cur, incomingID)
	}

	// The completion slot yields the outgoing id exactly once.
	got, ok := m.TakeCrossfadeCompleted()
	if !ok || got != outgoingID {
		t.Fatalf("TakeCrossfadeCompleted() = %v, %v; want %v, true", got, ok, outgoingID)
	}
	if _, ok := m.TakeCrossfadeCompleted(); ok {
		t.Error("completion slot yielded a second value")
	}
}

func TestStopClearsCompletion(t *testing.T) {
	m := New(zerolog.Nop())

	p1, c1 := newBuffer(t)
	fill(t, p1, pcm.Frame{Left: 0.5})
	p1.MarkDecodeComplete()
	m.StartPassage(c1, uuid.New())

	p2, c2 := newBuffer(t)
	fill(t, p2, pcm.Frame{Left: 0.1})
	if err := m.StartCrossfade(c2, uuid.New()); err != nil {
		t.Fatal(err)
	}

	m.NextFrame() // sum
	m.NextFrame() // transition, completion pending

	m.Stop()

	if f := m.NextFrame(); f != pcm.Zero {
		t.Errorf("NextFrame() after Stop = %v, want zero", f)
	}
	if _, ok := m.TakeCrossfadeCompleted(); ok {
		t.Error("Stop left a stale completion signal")
	}
	if _, ok := m.CurrentPassage(); ok {
		t.Error("CurrentPassage() reported a passage after Stop")
	}
}

func TestStartPassageReplaces(t *testing.T) {
	m := New(zerolog.Nop())

	p1, c1 := newBuffer(t)
	fill(t, p1, pcm.Frame{Left: 0.9})
	m.StartPassage(c1, uuid.New())

	p2, c2 := newBuffer(t)
	fill(t, p2, pcm.Frame{Left: 0.2})
	replacement := uuid.New()
	m.StartPassage(c2, replacement)

	if f := m.NextFrame(); f != (pcm.Frame{Left: 0.2}) {
		t.Errorf("NextFrame() = %v, want replacement stream", f)
	}
	cur, _ := m.CurrentPassage()
	if cur != replacement {
		t.Errorf("CurrentPassage() = %v, want %v", cur, replacement)
	}
}
