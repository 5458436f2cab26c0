// SPDX-License-Identifier: EPL-2.0

package source

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"

	"github.com/ik5/crossmix/pcm"
)

// bufferSource serves frames out of a fully decoded go-audio buffer.
type bufferSource struct {
	frames []pcm.Frame
	rate   int
	pos    int
}

// FromBuffer adapts a decoded *audio.FloatBuffer into a Source. Mono
// input is duplicated onto both channels; stereo input is
// de-interleaved; other channel counts return ErrUnsupportedLayout.
// Samples are expected in [-1, 1] as produced by AsFloatBuffer.
func FromBuffer(buf *audio.FloatBuffer) (Source, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrUnsupportedLayout)
	}

	channels := buf.Format.NumChannels
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, channels)
	}

	n := len(buf.Data) / channels
	frames := make([]pcm.Frame, n)
	if channels == 1 {
		for i := 0; i < n; i++ {
			v := float32(buf.Data[i])
			frames[i] = pcm.Frame{Left: v, Right: v}
		}
	} else {
		for i := 0; i < n; i++ {
			frames[i] = pcm.Frame{
				Left:  float32(buf.Data[i*2]),
				Right: float32(buf.Data[i*2+1]),
			}
		}
	}

	return &bufferSource{frames: frames, rate: buf.Format.SampleRate}, nil
}

func (b *bufferSource) SampleRate() int { return b.rate }
func (b *bufferSource) Close() error    { return nil }

func (b *bufferSource) ReadFrames(dst []pcm.Frame) (int, error) {
	if b.pos >= len(b.frames) {
		return 0, io.EOF
	}

	n := copy(dst, b.frames[b.pos:])
	b.pos += n

	if b.pos >= len(b.frames) {
		return n, io.EOF
	}
	return n, nil
}
