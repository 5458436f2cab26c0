// SPDX-License-Identifier: EPL-2.0

// Package mixer generates the engine's single output stream from zero,
// one or two playout buffers.
//
// The mixer is a small state machine: Idle (no buffer, emits silence),
// Single (one passage driving output) and Crossfading (two passages
// summed during their overlap window). Passages chain through
// Single -> Crossfading -> Single; Idle is entry and terminal only.
//
// # No gain math
//
// Fade envelopes are applied on the decode/write path before frames
// enter a buffer, so during a crossfade the mixer adds the two streams
// plain, left+left and right+right. There are no fade-progress
// counters to keep in sync with buffer positions; passage identity is
// the only bookkeeping the mixer carries.
//
// # Completion hand-off
//
// When the outgoing passage's buffer is exhausted mid-crossfade, the
// mixer drops to Single on the incoming buffer and records the
// outgoing passage id in a one-shot slot. The engine polls
// TakeCrossfadeCompleted on a coarse timer to advance its queue and
// release the finished buffer; the mixer never calls back into the
// engine. The incoming passage is already playing when the signal is
// observed, so the engine must only remove the outgoing passage, not
// restart anything.
//
// # Threading
//
// NextFrame is called from the audio output callback and never blocks,
// locks or allocates. Control calls (StartPassage, StartCrossfade,
// Stop) are issued from one engine goroutine; the state lives behind a
// single atomic pointer, so the output thread always observes a whole
// state, never a half-applied transition.
package mixer
