// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/crossmix/pcm"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the source.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int) pcm.Frame
}

// NewMockSource creates a new mock audio source.
// totalFrames is the total number of stereo frames to generate.
// waveform is a function that generates a frame given its index.
func NewMockSource(sampleRate, totalFrames int, waveform func(frame int) pcm.Frame) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, totalFrames, func(frame int) pcm.Frame {
		return pcm.Zero
	})
}

// NewSineSource creates a mock source that generates a sine wave on both channels.
func NewSineSource(sampleRate, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, totalFrames, func(frame int) pcm.Frame {
		t := float64(frame) / float64(sampleRate)
		v := float32(math.Sin(2 * math.Pi * frequency * t))
		return pcm.Frame{Left: v, Right: v}
	})
}

// NewConstantSource creates a mock source with constant value on both channels.
func NewConstantSource(sampleRate, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, totalFrames, func(frame int) pcm.Frame {
		return pcm.Frame{Left: value, Right: value}
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst []pcm.Frame) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesAvailable := m.totalFrames - m.generated
	framesToWrite := len(dst)
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	for i := 0; i < framesToWrite; i++ {
		dst[i] = m.waveform(m.generated + i)
	}

	m.generated += framesToWrite

	if m.generated >= m.totalFrames {
		return framesToWrite, io.EOF
	}

	return framesToWrite, nil
}
