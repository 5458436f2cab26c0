// SPDX-License-Identifier: EPL-2.0

// Package crossmix provides the real-time crossfade mixing core of a
// music playback engine.
//
// The package turns two independently decoded passages of PCM audio
// into one gapless output stream with sample-accurate crossfade
// transitions. The real-time path never blocks, never locks and never
// allocates: each passage gets a bounded lock-free ring buffer between
// its decoder and the mixer, and the mixer is a small state machine
// that sums pre-faded frames.
//
// # Architecture
//
// Data flows decoder -> Producer.Push -> ring buffer -> Consumer.Pop
// -> Mixer -> output sink. The subpackages follow that chain:
//
//   - timing: tick-based time arithmetic; every supported sample rate
//     maps to an exact integer number of ticks per sample
//   - fade: the five fade gain curves
//   - pcm: the stereo frame value type
//   - buffer: the per-passage playout ring buffer and its manager
//   - mixer: the Idle/Single/Crossfading state machine
//   - fader: decode-side envelope application and buffer feeding
//   - source: the boundary interface to external decoders
//   - formats: wav/aiff/mp3/vorbis decoder adapters for that boundary
//
// # Quick Start
//
// The Engine wires the manager and mixer together:
//
//	engine := crossmix.NewEngine(crossmix.Config{})
//
//	id := uuid.New()
//	producer, _ := engine.Enqueue(id)
//
//	// Feed decoded frames from a worker goroutine.
//	go fader.Feed(ctx, src, producer, envelope, logger)
//
//	engine.Play(id)
//
//	// Audio callback: one frame per output sample.
//	frame := engine.NextFrame()
//
//	// Later, overlap into the next passage.
//	nextProducer, _ := engine.Enqueue(nextID)
//	go fader.Feed(ctx, nextSrc, nextProducer, nextEnvelope, logger)
//	engine.CrossfadeTo(nextID)
//
//	// Coarse timer: release passages whose crossfade finished.
//	if finished, ok := engine.Reap(); ok {
//	    // finished has fully played out
//	}
//
// # Fades are pre-applied
//
// Envelopes are baked into buffer contents by the fader before frames
// are queued. During a crossfade the mixer performs plain addition,
// left+left and right+right, with no gain math of its own. The
// summation step stays allocation-free and trivially verifiable, and
// there is no fade-progress counter to keep synchronized with buffer
// positions.
//
// # Underruns
//
// A starved buffer repeats its most recent frame rather than emitting
// silence or stalling the audio callback. A passage is finished only
// when its decoder marked completion and its buffer is drained; the
// mixer distinguishes the two conditions and never drops output on a
// transient underrun.
//
// See the individual subpackages for more detailed documentation.
package crossmix
