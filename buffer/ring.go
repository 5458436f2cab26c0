// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ik5/crossmix/pcm"
)

const (
	// DefaultCapacity is about 15 seconds of audio at 44.1 kHz.
	DefaultCapacity = 661_941

	// DefaultHeadroom is 0.1 seconds at 44.1 kHz.
	DefaultHeadroom = 4_410

	// DefaultResumeHysteresis is 1 second at 44.1 kHz.
	DefaultResumeHysteresis = 44_100
)

// Config holds the sizing parameters of a playout ring buffer, all in
// stereo frames. Zero fields are replaced by the package defaults.
type Config struct {
	// Capacity is the total number of frames the buffer can hold.
	Capacity int

	// Headroom is the free-space threshold at which the producer is
	// asked to pause.
	Headroom int

	// ResumeHysteresis is the extra free space, beyond Headroom,
	// required before a paused producer is released.
	ResumeHysteresis int
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Headroom == 0 {
		c.Headroom = DefaultHeadroom
	}
	if c.ResumeHysteresis == 0 {
		c.ResumeHysteresis = DefaultResumeHysteresis
	}
	return c
}

// Validate reports whether the configuration is usable. Capacity and
// Headroom must be positive with Capacity > Headroom, and
// ResumeHysteresis must be strictly positive.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	if c.Headroom <= 0 || c.Headroom >= c.Capacity {
		return fmt.Errorf("%w: headroom %d, capacity %d", ErrInvalidHeadroom, c.Headroom, c.Capacity)
	}
	if c.ResumeHysteresis <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHysteresis, c.ResumeHysteresis)
	}
	return nil
}

// Stats is a point-in-time snapshot of a buffer's counters. The values
// are read with relaxed consistency and may lag the true state by a
// few frames.
type Stats struct {
	Capacity       int
	Len            int
	Free           int
	TotalPushed    uint64
	TotalPopped    uint64
	Paused         bool
	DecodeComplete bool
}

// state is the coordination block shared by the Producer and Consumer
// halves. Frames travel through the ring via the head/tail counters;
// everything else is advisory or a flag with its own ordering
// contract.
type state struct {
	frames []pcm.Frame
	cfg    Config

	// Monotonic position counters. tail is written only by the
	// producer, head only by the consumer; the slot write happens
	// before the counter store that publishes it.
	head atomic.Uint64
	tail atomic.Uint64

	// Approximate fill level in frames. Updated on both sides without
	// synchronization against the counters; pause/resume decisions
	// tolerate the slack.
	fill atomic.Int64

	// shouldPause: written with the publishing store of the side that
	// crossed a threshold, read by the producer before each push batch.
	shouldPause atomic.Bool

	// decodeComplete: set once by the producer at end of stream.
	decodeComplete atomic.Bool

	// Last pushed frame, bit-cast per channel. The two cells are not
	// updated together, so a concurrent reader can see a torn pair;
	// acceptable for underrun fallback.
	lastLeft  atomic.Uint32
	lastRight atomic.Uint32

	totalPushed atomic.Uint64
	totalPopped atomic.Uint64
}

func (s *state) lastFrame() pcm.Frame {
	return pcm.Frame{
		Left:  math.Float32frombits(s.lastLeft.Load()),
		Right: math.Float32frombits(s.lastRight.Load()),
	}
}

func (s *state) len() int {
	return int(s.tail.Load() - s.head.Load())
}

func (s *state) stats() Stats {
	n := s.len()
	return Stats{
		Capacity:       s.cfg.Capacity,
		Len:            n,
		Free:           s.cfg.Capacity - n,
		TotalPushed:    s.totalPushed.Load(),
		TotalPopped:    s.totalPopped.Load(),
		Paused:         s.shouldPause.Load(),
		DecodeComplete: s.decodeComplete.Load(),
	}
}

// New allocates a playout ring buffer and splits it exactly once into
// its Producer and Consumer halves. The storage is freed when both
// halves become unreachable.
func New(cfg Config) (*Producer, *Consumer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	s := &state{
		frames: make([]pcm.Frame, cfg.Capacity),
		cfg:    cfg,
	}

	return &Producer{s: s}, &Consumer{s: s}, nil
}

// Producer is the write half of a playout ring buffer, owned by the
// decode path. It must be used from a single goroutine.
type Producer struct {
	s *state
}

// Push enqueues one frame. It never blocks: a full buffer returns
// ErrBufferFull immediately, which is a normal condition the
// pause/resume protocol exists to avoid, not a failure.
func (p *Producer) Push(f pcm.Frame) error {
	s := p.s

	head := s.head.Load()
	tail := s.tail.Load()
	if int(tail-head) >= s.cfg.Capacity {
		return ErrBufferFull
	}

	s.frames[tail%uint64(s.cfg.Capacity)] = f
	s.tail.Store(tail + 1)

	newFill := s.fill.Add(1)
	s.totalPushed.Add(1)

	s.lastLeft.Store(math.Float32bits(f.Left))
	s.lastRight.Store(math.Float32bits(f.Right))

	if int64(s.cfg.Capacity)-newFill <= int64(s.cfg.Headroom) && !s.shouldPause.Load() {
		s.shouldPause.Store(true)
	}

	return nil
}

// ShouldPause reports whether the buffer is nearly full and the
// producer should stop pushing until the flag clears.
func (p *Producer) ShouldPause() bool {
	return p.s.shouldPause.Load()
}

// MarkDecodeComplete records that the source has no more frames. Call
// exactly once, after the final Push.
func (p *Producer) MarkDecodeComplete() {
	p.s.decodeComplete.Store(true)
}

// Free returns the approximate number of frames that can be pushed
// before the buffer is full.
func (p *Producer) Free() int {
	return p.s.cfg.Capacity - p.s.len()
}

// Stats returns a snapshot of the buffer's counters.
func (p *Producer) Stats() Stats {
	return p.s.stats()
}

// Consumer is the read half of a playout ring buffer, owned by the
// mixer. It must be used from a single goroutine.
type Consumer struct {
	s *state
}

// Pop dequeues one frame. It never blocks: on an empty buffer it
// returns the most recently pushed frame with ok == false, so an
// underrun repeats audio instead of going silent or stalling the
// output callback.
func (c *Consumer) Pop() (frame pcm.Frame, ok bool) {
	s := c.s

	head := s.head.Load()
	tail := s.tail.Load()
	if head == tail {
		return s.lastFrame(), false
	}

	frame = s.frames[head%uint64(s.cfg.Capacity)]
	s.head.Store(head + 1)

	newFill := s.fill.Add(-1)
	s.totalPopped.Add(1)

	free := int64(s.cfg.Capacity) - newFill
	if free >= int64(s.cfg.Headroom+s.cfg.ResumeHysteresis) && s.shouldPause.Load() {
		s.shouldPause.Store(false)
	}

	return frame, true
}

// Exhausted reports whether the passage is permanently finished:
// decoding is complete and every pushed frame has been popped. A
// buffer that is merely empty while decoding continues is not
// exhausted.
func (c *Consumer) Exhausted() bool {
	s := c.s
	return s.decodeComplete.Load() && s.head.Load() == s.tail.Load()
}

// Len returns the approximate number of frames queued.
func (c *Consumer) Len() int {
	return c.s.len()
}

// Stats returns a snapshot of the buffer's counters.
func (c *Consumer) Stats() Stats {
	return c.s.stats()
}
