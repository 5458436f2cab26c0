// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/crossmix/pcm"
	"github.com/ik5/crossmix/source"
)

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// wavSource wraps go-audio wav.Decoder to implement source.Source
type wavSource struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadFrames(dst []pcm.Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	samples := len(dst) * s.channels

	// Resize buffer if needed
	if s.intBuf == nil || cap(s.intBuf.Data) < samples {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, samples),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:samples]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	frames := convertFrames(dst, s.intBuf.Data[:n], s.channels, s.bitDepth)

	// If we got fewer samples than requested and no error, we're at EOF
	if n < samples && err == nil {
		return frames, io.EOF
	}

	return frames, err
}

// convertFrames normalizes interleaved int samples into stereo frames,
// duplicating mono input onto both channels.
func convertFrames(dst []pcm.Frame, data []int, channels, bitDepth int) int {
	var maxVal float32
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0 // Default to 16-bit
	}

	frames := len(data) / channels
	if channels == 1 {
		for i := 0; i < frames; i++ {
			v := float32(data[i]) / maxVal
			dst[i] = pcm.Frame{Left: v, Right: v}
		}
	} else {
		for i := 0; i < frames; i++ {
			dst[i] = pcm.Frame{
				Left:  float32(data[i*channels]) / maxVal,
				Right: float32(data[i*channels+1]) / maxVal,
			}
		}
	}

	return frames
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (source.Source, error) {
	rs, err := asReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedWavLayout
	}
	if format.NumChannels < 1 || format.NumChannels > 2 {
		return nil, ErrUnsupportedWavLayout
	}

	return &wavSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}

// asReadSeeker returns r unchanged when it can seek; otherwise the
// whole stream is buffered in memory, a limitation of go-audio.
func asReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}
	return &readSeeker{data: data}, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
