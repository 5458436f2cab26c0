// SPDX-License-Identifier: EPL-2.0

package crossmix

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/crossmix/buffer"
	"github.com/ik5/crossmix/mixer"
	"github.com/ik5/crossmix/pcm"
)

// PassageID identifies a passage throughout the engine.
type PassageID = mixer.PassageID

// Config configures an Engine. The zero value uses the default buffer
// sizing and discards logs.
type Config struct {
	// Buffer sizes every passage's playout buffer. Zero fields take
	// the buffer package defaults.
	Buffer buffer.Config

	// Logger receives control-path events. Audio generation never
	// logs.
	Logger zerolog.Logger
}

// Engine ties the buffer manager and the crossfade mixer together into
// the playback chain an application drives: enqueue a passage, feed
// its producer from a decode goroutine, start it or crossfade to it,
// pull frames from the audio callback, and reap finished passages on a
// coarse timer.
//
// Control methods (Enqueue, Play, CrossfadeTo, Reap, Stop) are safe
// for one control goroutine; NextFrame belongs to the audio callback.
type Engine struct {
	manager *buffer.Manager
	mix     *mixer.Mixer
	log     zerolog.Logger

	mtx       sync.Mutex
	consumers map[PassageID]*buffer.Consumer
}

// NewEngine creates an idle engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		manager:   buffer.NewManager(cfg.Buffer, cfg.Logger),
		mix:       mixer.New(cfg.Logger),
		log:       cfg.Logger.With().Str("component", "engine").Logger(),
		consumers: make(map[PassageID]*buffer.Consumer),
	}
}

// Enqueue allocates the playout buffer for a passage and returns the
// producer half for the caller's decode path. The consumer half stays
// with the engine until Play or CrossfadeTo hands it to the mixer.
func (e *Engine) Enqueue(id PassageID) (*buffer.Producer, error) {
	prod, cons, err := e.manager.Allocate(id)
	if err != nil {
		return nil, err
	}

	e.mtx.Lock()
	e.consumers[id] = cons
	e.mtx.Unlock()

	return prod, nil
}

// Play makes the passage the sole source of output. The passage must
// have been enqueued.
func (e *Engine) Play(id PassageID) error {
	cons, err := e.takeConsumer(id)
	if err != nil {
		return err
	}

	e.mix.StartPassage(cons, id)
	return nil
}

// CrossfadeTo begins crossfading from the currently playing passage to
// the given one. The passage must have been enqueued and exactly one
// passage must be playing.
func (e *Engine) CrossfadeTo(id PassageID) error {
	cons, err := e.takeConsumer(id)
	if err != nil {
		return err
	}

	return e.mix.StartCrossfade(cons, id)
}

func (e *Engine) takeConsumer(id PassageID) (*buffer.Consumer, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	cons, ok := e.consumers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEnqueued, id)
	}
	delete(e.consumers, id)
	return cons, nil
}

// NextFrame returns the next output frame. Call once per sample from
// the audio output callback; it never blocks.
func (e *Engine) NextFrame() pcm.Frame {
	return e.mix.NextFrame()
}

// Reap polls the mixer's crossfade-completion slot and releases the
// finished passage's buffer. Call it on a coarse timer (for example
// every 100 ms); it reports the reaped passage id when one completed
// since the previous call.
func (e *Engine) Reap() (PassageID, bool) {
	id, ok := e.mix.TakeCrossfadeCompleted()
	if !ok {
		return id, false
	}

	if err := e.manager.Remove(id); err != nil {
		// The engine's bookkeeping no longer tracks this passage; the
		// signal is stale and the next poll re-derives fresh state.
		e.log.Warn().Stringer("passage", id).Err(err).Msg("completion for untracked passage")
		return id, true
	}

	e.log.Debug().Stringer("passage", id).Msg("passage finished")
	return id, true
}

// Stop silences output immediately and releases every buffer the
// engine still tracks. Decoders observe completion through their
// producer handles going unread.
func (e *Engine) Stop() {
	e.mix.Stop()

	e.mtx.Lock()
	for id := range e.consumers {
		delete(e.consumers, id)
	}
	e.mtx.Unlock()

	for _, id := range e.manager.Passages() {
		if err := e.manager.Remove(id); err != nil {
			e.log.Warn().Stringer("passage", id).Err(err).Msg("release on stop failed")
		}
	}

	e.log.Debug().Msg("engine stopped")
}

// CurrentPassage returns the id of the passage driving output.
func (e *Engine) CurrentPassage() (PassageID, bool) {
	return e.mix.CurrentPassage()
}

// IsCrossfading reports whether a crossfade is in progress.
func (e *Engine) IsCrossfading() bool {
	return e.mix.IsCrossfading()
}

// BufferStats returns the counters of a passage's playout buffer.
func (e *Engine) BufferStats(id PassageID) (buffer.Stats, error) {
	return e.manager.Stats(id)
}
