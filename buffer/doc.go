// SPDX-License-Identifier: EPL-2.0

// Package buffer provides the per-passage playout ring buffer and its
// lifecycle manager.
//
// Each passage gets one bounded, lock-free single-producer
// single-consumer queue of stereo frames. The queue is split exactly
// once at construction into a Producer handle (owned by the decode
// path) and a Consumer handle (owned by the mixer); neither half can
// be copied into a second writer or reader.
//
// # Backpressure
//
// The producer is asked to pause when free space falls to Headroom,
// and is released only once free space has recovered to Headroom +
// ResumeHysteresis. The two thresholds are deliberately asymmetric:
// with a single threshold the pause flag flaps on every frame of
// drain jitter.
//
//	p, c, _ := buffer.New(buffer.Config{})
//	for frame := range decoded {
//	    for p.ShouldPause() {
//	        time.Sleep(10 * time.Millisecond)
//	    }
//	    if err := p.Push(frame); err != nil {
//	        // full despite the pause protocol; retry after a sleep
//	    }
//	}
//	p.MarkDecodeComplete()
//
// # Underrun policy
//
// Pop never blocks and never returns silence. On an empty queue it
// returns the most recently pushed frame with ok == false: repeating
// one frame for a few milliseconds is far less audible than a gap.
// A buffer is Exhausted only when the producer has marked decoding
// complete and the queue is empty; a merely starved buffer recovers.
//
// # Real-time safety
//
// Push and Pop are wait-free on their own half: no locks, no
// allocation, no syscalls. All shared coordination state (fill
// estimate, pause flag, decode-complete flag, last-frame cache) lives
// in individual atomic cells. The fill estimate and throughput
// counters are advisory; control decisions built on them use margins
// far wider than any transient inaccuracy. The last-frame cache is a
// pair of independently stored channel values, so a reader may see a
// torn stereo pair; during an underrun that is one frame of
// imperceptible channel mismatch.
//
// # Lifecycle
//
// The Manager owns the registry of live buffers keyed by passage id.
// Allocate constructs and splits a buffer; calling it twice for one
// id is a bookkeeping bug and fails fast. Remove drops the manager's
// reference; the storage is freed once the producer and consumer
// handles are also unreachable, so there is no free-while-in-use
// race to manage. Registry mutation uses a plain mutex: it happens at
// passage boundaries, never on the audio path.
package buffer
