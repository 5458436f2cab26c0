// SPDX-License-Identifier: EPL-2.0

// Package fader is the decode-side write path of the mixing core: it
// applies a passage's volume envelope to decoded frames and pumps them
// into a playout buffer under the pause/resume protocol. Envelopes are
// baked into buffer contents here so the mixer can sum streams without
// any gain math.
package fader

import (
	"fmt"

	"github.com/ik5/crossmix/fade"
	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/timing"
)

// Envelope evaluates a passage's fade gains by absolute frame index,
// where frame 0 is the passage's start point. The fade windows come
// from the passage timing; the curve shapes are supplied by the
// caller.
type Envelope struct {
	inCurve  fade.Curve
	outCurve fade.Curve

	fadeInStart int64
	fadeInEnd   int64

	fadeOutStart int64
	end          int64

	hasIn  bool
	hasOut bool
}

// NewEnvelope builds the envelope for a passage rendered at the given
// sample rate. The passage must validate and the rate must be a
// supported one.
func NewEnvelope(p timing.Passage, rate int, in, out fade.Curve) (*Envelope, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid passage timing: %w", err)
	}

	toFrames := func(t timing.Tick) (int64, error) {
		return timing.TicksToSamples(t-p.Start, rate)
	}

	fadeInStart, err := toFrames(p.FadeInStart)
	if err != nil {
		return nil, err
	}
	fadeInEnd, err := toFrames(p.FadeInEnd)
	if err != nil {
		return nil, err
	}
	fadeOutStart, err := toFrames(p.FadeOutStart)
	if err != nil {
		return nil, err
	}
	end, err := toFrames(p.End)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		inCurve:      in,
		outCurve:     out,
		fadeInStart:  fadeInStart,
		fadeInEnd:    fadeInEnd,
		fadeOutStart: fadeOutStart,
		end:          end,
		hasIn:        fadeInEnd > fadeInStart,
		hasOut:       fadeOutStart < end,
	}, nil
}

// PassThrough reports whether the envelope applies no gain at all
// (both fade windows have zero width).
func (e *Envelope) PassThrough() bool {
	return !e.hasIn && !e.hasOut
}

// Gain returns the combined fade multiplier for the given frame. A
// frame inside both windows gets the product of both gains.
func (e *Envelope) Gain(frame int64) float32 {
	gain := float32(1)

	if e.hasIn && frame < e.fadeInEnd {
		if frame < e.fadeInStart {
			// The passage has a fade-in but it has not begun yet.
			return 0
		}
		progress := float32(frame-e.fadeInStart) / float32(e.fadeInEnd-e.fadeInStart)
		gain *= e.inCurve.In(progress)
	}

	if e.hasOut && frame >= e.fadeOutStart {
		progress := float32(frame-e.fadeOutStart) / float32(e.end-e.fadeOutStart)
		gain *= e.outCurve.Out(progress)
	}

	return gain
}

// Apply returns the frame with the envelope gain for its position
// applied to both channels.
func (e *Envelope) Apply(f pcm.Frame, frame int64) pcm.Frame {
	if e.PassThrough() {
		return f
	}
	return f.Scale(e.Gain(frame))
}
