// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/source"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// vorbisSource wraps oggvorbis.Reader to implement source.Source.
// Read returns interleaved float32 samples already in [-1.0, 1.0].
type vorbisSource struct {
	dec        oggReader
	sampleRate int
	channels   int
	scratch    []float32
}

func (s *vorbisSource) SampleRate() int { return s.sampleRate }
func (s *vorbisSource) Close() error    { return nil }

func (s *vorbisSource) ReadFrames(dst []pcm.Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	samples := len(dst) * s.channels
	if cap(s.scratch) < samples {
		s.scratch = make([]float32, samples)
	}
	s.scratch = s.scratch[:samples]

	// Read returns the number of samples stored, always a multiple
	// of the channel count
	n, err := s.dec.Read(s.scratch)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	frames := n / s.channels
	if s.channels == 1 {
		for i := 0; i < frames; i++ {
			v := s.scratch[i]
			dst[i] = pcm.Frame{Left: v, Right: v}
		}
	} else {
		for i := 0; i < frames; i++ {
			dst[i] = pcm.Frame{
				Left:  s.scratch[i*2],
				Right: s.scratch[i*2+1],
			}
		}
	}

	return frames, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (source.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() < 1 || dec.Channels() > 2 {
		return nil, ErrUnsupportedVorbisLayout
	}

	return &vorbisSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		scratch:    make([]float32, 8192),
	}, nil
}
