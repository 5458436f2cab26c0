// SPDX-License-Identifier: EPL-2.0

package fader

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/crossmix/buffer"
	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/source"
)

const (
	// readChunk is the number of frames requested from the source per
	// read. 4096 frames is ~93ms at 44.1kHz.
	readChunk = 4096

	// pauseInterval is how long the pump sleeps while the buffer asks
	// it to hold off.
	pauseInterval = 10 * time.Millisecond
)

// Feed drains src into p with the envelope applied, honoring the
// buffer's pause/resume protocol. It runs until the source is
// exhausted or ctx is canceled, marks decoding complete in both cases,
// and returns the number of frames written.
//
// Feed blocks and is meant to run on a decode worker goroutine, one
// per passage. It is the only writer of its producer handle.
func Feed(ctx context.Context, src source.Source, p *buffer.Producer, env *Envelope, logger zerolog.Logger) (int64, error) {
	log := logger.With().Str("component", "fader").Logger()

	var written int64
	chunk := make([]pcm.Frame, readChunk)

	for {
		n, readErr := src.ReadFrames(chunk)

		for i := 0; i < n; i++ {
			f := env.Apply(chunk[i], written)

			for {
				if err := ctx.Err(); err != nil {
					p.MarkDecodeComplete()
					log.Debug().Int64("frames", written).Msg("feed canceled")
					return written, err
				}
				if p.ShouldPause() {
					time.Sleep(pauseInterval)
					continue
				}
				if err := p.Push(f); err == nil {
					break
				}
				// Full without the pause flag set; back off and retry.
				time.Sleep(pauseInterval)
			}

			written++
		}

		if readErr == io.EOF {
			p.MarkDecodeComplete()
			log.Debug().Int64("frames", written).Msg("feed complete")
			return written, nil
		}
		if readErr != nil {
			p.MarkDecodeComplete()
			return written, fmt.Errorf("read source: %w", readErr)
		}
	}
}
