// SPDX-License-Identifier: EPL-2.0

package timing

import "fmt"

// Passage holds the seven timing points of a playable span, all as
// absolute ticks from the start of the source file.
//
// LeadIn and LeadOut bound the window in which the passage may overlap
// a neighbor; they carry no volume effect. FadeInStart/FadeInEnd and
// FadeOutStart/End bound the volume envelope. The two pairs may
// coincide or differ; neither implies the other.
type Passage struct {
	Start        Tick
	LeadIn       Tick
	FadeInStart  Tick
	FadeInEnd    Tick
	FadeOutStart Tick
	LeadOut      Tick
	End          Tick
}

// Validate checks that the points are monotonically non-decreasing in
// the order Start, LeadIn, FadeInStart, FadeInEnd, FadeOutStart,
// LeadOut, End.
func (p Passage) Validate() error {
	points := []struct {
		name string
		tick Tick
	}{
		{"start", p.Start},
		{"lead_in", p.LeadIn},
		{"fade_in_start", p.FadeInStart},
		{"fade_in_end", p.FadeInEnd},
		{"fade_out_start", p.FadeOutStart},
		{"lead_out", p.LeadOut},
		{"end", p.End},
	}

	for i := 1; i < len(points); i++ {
		if points[i].tick < points[i-1].tick {
			return fmt.Errorf("%w: %s (%d) < %s (%d)", ErrNonMonotonic,
				points[i].name, points[i].tick, points[i-1].name, points[i-1].tick)
		}
	}

	return nil
}

// Duration returns End - Start.
func (p Passage) Duration() Tick {
	return p.End - p.Start
}

// HasFadeIn reports whether the passage has a fade-in window of
// non-zero width.
func (p Passage) HasFadeIn() bool {
	return p.FadeInEnd > p.FadeInStart
}

// HasFadeOut reports whether the passage has a fade-out window of
// non-zero width. A passage with FadeOutStart == End never fades out.
func (p Passage) HasFadeOut() bool {
	return p.FadeOutStart < p.End
}
