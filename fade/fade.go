// SPDX-License-Identifier: EPL-2.0

// Package fade provides the gain curves used to shape passage volume
// envelopes.
//
// Each curve maps a normalized progress value p in [0, 1] to a gain in
// [0, 1]: In rises from 0 to 1, Out falls from 1 to 0. The functions
// are pure; the same curve produces the same gain wherever it is
// evaluated. Envelopes are applied on the decode/write path before
// frames are buffered, never during mixing.
//
// # Choosing a curve
//
//	Linear      constant-slope ramp; audible loudness dip when crossfaded
//	Exponential slow start, fast finish; natural-sounding fade-in
//	Logarithmic fast start, slow finish; natural-sounding fade-out
//	SCurve      smooth ends, steep middle; gentle general-purpose shape
//	EqualPower  sin/cos pair; summed power is constant across the fade
//
// When two passages crossfade, pair the outgoing Out curve with the
// incoming In curve via Pair: Exponential and Logarithmic complement
// each other, the rest pair with themselves.
package fade

import (
	"fmt"
	"math"
)

// Curve identifies a fade gain shape.
type Curve int

const (
	Linear Curve = iota
	Exponential
	Logarithmic
	SCurve
	EqualPower
)

// Curves returns all curves in declaration order.
func Curves() []Curve {
	return []Curve{Linear, Exponential, Logarithmic, SCurve, EqualPower}
}

// In returns the fade-in gain for progress p. p is clamped to [0, 1];
// the result rises from 0 at p=0 to 1 at p=1.
func (c Curve) In(p float32) float32 {
	p = clamp(p)

	switch c {
	case Exponential:
		return p * p
	case Logarithmic:
		return float32(math.Sqrt(float64(p)))
	case SCurve:
		return 0.5 * (1 - float32(math.Cos(float64(p)*math.Pi)))
	case EqualPower:
		return float32(math.Sin(float64(p) * math.Pi / 2))
	default: // Linear
		return p
	}
}

// Out returns the fade-out gain for progress p. p is clamped to [0, 1];
// the result falls from 1 at p=0 to 0 at p=1.
func (c Curve) Out(p float32) float32 {
	p = clamp(p)

	switch c {
	case Exponential, Logarithmic:
		inv := 1 - p
		return inv * inv
	case SCurve:
		return 0.5 * (1 + float32(math.Cos(float64(p)*math.Pi)))
	case EqualPower:
		return float32(math.Cos(float64(p) * math.Pi / 2))
	default: // Linear
		return 1 - p
	}
}

// Pair returns the curve recommended for the opposite side of a
// crossfade: Exponential with Logarithmic and vice versa, every other
// curve with itself.
func (c Curve) Pair() Curve {
	switch c {
	case Exponential:
		return Logarithmic
	case Logarithmic:
		return Exponential
	default:
		return c
	}
}

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case SCurve:
		return "s-curve"
	case EqualPower:
		return "equal-power"
	default:
		return fmt.Sprintf("Curve(%d)", int(c))
	}
}

// ParseCurve parses the textual form produced by String.
func ParseCurve(s string) (Curve, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "exponential":
		return Exponential, nil
	case "logarithmic":
		return Logarithmic, nil
	case "s-curve":
		return SCurve, nil
	case "equal-power":
		return EqualPower, nil
	default:
		return Linear, fmt.Errorf("%w: %q", ErrUnknownCurve, s)
	}
}

func clamp(p float32) float32 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
