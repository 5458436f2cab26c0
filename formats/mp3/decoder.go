// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/source"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// mp3Source wraps go-mp3 to implement source.Source. go-mp3 always
// outputs 16-bit little-endian stereo, 4 bytes per frame.
type mp3Source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadFrames(dst []pcm.Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 4
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	frames := n / 4
	for i := 0; i < frames; i++ {
		left := int16(uint16(s.buf[4*i]) | uint16(s.buf[4*i+1])<<8)
		right := int16(uint16(s.buf[4*i+2]) | uint16(s.buf[4*i+3])<<8)
		dst[i] = pcm.Frame{
			Left:  pcm.Int16ToFloat32(left),
			Right: pcm.Int16ToFloat32(right),
		}
	}

	return frames, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (source.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &mp3Source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 16384),
	}, nil
}
