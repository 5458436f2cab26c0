// SPDX-License-Identifier: EPL-2.0

// Package pcm defines the stereo sample frame exchanged between the
// decode path, the playout buffers and the mixer, plus the small
// arithmetic the mixing core needs on it.
package pcm

// Frame is one stereo sample: two float32 values in [-1, 1].
// It is a plain value; copy it freely.
type Frame struct {
	Left  float32
	Right float32
}

// Zero is the silent frame.
var Zero = Frame{}

// Add returns the plain sum of two frames. No gain or clipping is
// applied; callers that mix pre-faded streams rely on that.
func (f Frame) Add(o Frame) Frame {
	return Frame{
		Left:  f.Left + o.Left,
		Right: f.Right + o.Right,
	}
}

// Scale returns the frame with both channels multiplied by gain.
func (f Frame) Scale(gain float32) Frame {
	return Frame{
		Left:  f.Left * gain,
		Right: f.Right * gain,
	}
}
