// SPDX-License-Identifier: EPL-2.0

package fader

import (
	"math"
	"testing"

	"github.com/ik5/crossmix/fade"
	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/timing"
)

const rate = 44100

// secs converts a second offset into absolute ticks.
func secs(s float64) timing.Tick {
	t, err := timing.ToTicks(s)
	if err != nil {
		panic(err)
	}
	return t
}

func testPassage() timing.Passage {
	return timing.Passage{
		Start:        0,
		LeadIn:       secs(1),
		FadeInStart:  secs(1),
		FadeInEnd:    secs(3),
		FadeOutStart: secs(8),
		LeadOut:      secs(10),
		End:          secs(10),
	}
}

func TestEnvelopeWindows(t *testing.T) {
	env, err := NewEnvelope(testPassage(), rate, fade.Linear, fade.Linear)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if env.PassThrough() {
		t.Fatal("PassThrough() = true with fade windows present")
	}

	fadeInStart := int64(1 * rate)
	fadeInEnd := int64(3 * rate)
	fadeOutStart := int64(8 * rate)
	end := int64(10 * rate)

	tests := []struct {
		name  string
		frame int64
		want  float32
	}{
		{"before fade-in", 0, 0},
		{"just before fade-in", fadeInStart - 1, 0},
		{"fade-in start", fadeInStart, 0},
		{"fade-in midpoint", (fadeInStart + fadeInEnd) / 2, 0.5},
		{"full gain region", 5 * rate, 1},
		{"fade-out start", fadeOutStart, 1},
		{"fade-out midpoint", (fadeOutStart + end) / 2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Gain(tt.frame)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Gain(%d) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestEnvelopeNearEndApproachesZero(t *testing.T) {
	env, err := NewEnvelope(testPassage(), rate, fade.Linear, fade.Linear)
	if err != nil {
		t.Fatal(err)
	}

	end := int64(10 * rate)
	if g := env.Gain(end - 1); g > 0.001 {
		t.Errorf("Gain(end-1) = %v, want near 0", g)
	}
}

func TestEnvelopePassThrough(t *testing.T) {
	flat := timing.Passage{
		Start:        0,
		LeadIn:       0,
		FadeInStart:  0,
		FadeInEnd:    0,
		FadeOutStart: secs(10),
		LeadOut:      secs(10),
		End:          secs(10),
	}

	env, err := NewEnvelope(flat, rate, fade.EqualPower, fade.EqualPower)
	if err != nil {
		t.Fatal(err)
	}
	if !env.PassThrough() {
		t.Fatal("PassThrough() = false with zero-width windows")
	}

	f := pcm.Frame{Left: 0.5, Right: -0.5}
	if got := env.Apply(f, 12345); got != f {
		t.Errorf("Apply() = %v, want unmodified %v", got, f)
	}
}

func TestEnvelopeApplyScalesBothChannels(t *testing.T) {
	env, err := NewEnvelope(testPassage(), rate, fade.Linear, fade.Linear)
	if err != nil {
		t.Fatal(err)
	}

	mid := int64(2 * rate) // linear fade-in midpoint, gain 0.5
	got := env.Apply(pcm.Frame{Left: 1, Right: -1}, mid)
	if math.Abs(float64(got.Left-0.5)) > 1e-5 || math.Abs(float64(got.Right+0.5)) > 1e-5 {
		t.Errorf("Apply() = %v, want {0.5 -0.5}", got)
	}
}

func TestEnvelopeOffsetPassage(t *testing.T) {
	// A passage that begins mid-file: windows are relative to Start.
	p := timing.Passage{
		Start:        secs(30),
		LeadIn:       secs(30),
		FadeInStart:  secs(30),
		FadeInEnd:    secs(32),
		FadeOutStart: secs(58),
		LeadOut:      secs(60),
		End:          secs(60),
	}

	env, err := NewEnvelope(p, rate, fade.Linear, fade.Linear)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 0 is the first frame of the passage, inside the fade-in.
	if g := env.Gain(0); g != 0 {
		t.Errorf("Gain(0) = %v, want 0 at fade-in start", g)
	}
	if g := env.Gain(int64(1 * rate)); math.Abs(float64(g-0.5)) > 1e-5 {
		t.Errorf("Gain(1s) = %v, want 0.5", g)
	}
	if g := env.Gain(int64(10 * rate)); g != 1 {
		t.Errorf("Gain(10s) = %v, want 1", g)
	}
}

func TestNewEnvelopeRejectsBadInput(t *testing.T) {
	bad := testPassage()
	bad.FadeInEnd = 0 // before FadeInStart
	if _, err := NewEnvelope(bad, rate, fade.Linear, fade.Linear); err == nil {
		t.Error("NewEnvelope accepted non-monotonic passage")
	}

	if _, err := NewEnvelope(testPassage(), 44000, fade.Linear, fade.Linear); err == nil {
		t.Error("NewEnvelope accepted unsupported sample rate")
	}
}
