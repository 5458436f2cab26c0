// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/crossmix/pcm"
)

// WriteWAV16 writes stereo frames as a 16-bit PCM WAV at sampleRate.
// This uses an optimized implementation for minimal allocations.
func WriteWAV16(w io.Writer, sampleRate int, frames []pcm.Frame) error {
	numChannels := uint16(2)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := uint16(numChannels) * uint16(bitsPerSample/8)
	dataSize := uint32(len(frames) * 4)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(frames) == 0 {
		return nil
	}

	// Convert frames to bytes in chunks to bound the buffer
	const chunkSize = 4096 // frames per write
	bufSize := min(len(frames), chunkSize)
	buf := make([]byte, bufSize*4)

	for i := 0; i < len(frames); i += chunkSize {
		end := min(i+chunkSize, len(frames))
		chunk := frames[i:end]
		buf = buf[:len(chunk)*4]

		for j, f := range chunk {
			binary.LittleEndian.PutUint16(buf[j*4:j*4+2], uint16(pcm.Float32ToInt16(f.Left)))
			binary.LittleEndian.PutUint16(buf[j*4+2:j*4+4], uint16(pcm.Float32ToInt16(f.Right)))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
