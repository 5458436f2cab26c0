// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// It provides a simple interface for reading MP3 audio as stereo frames.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]pcm.Frame, 4096)
//	n, err := src.ReadFrames(buf)
//
// The decoder returns a source.Source delivering frames with samples
// in the range [-1.0, 1.0]. go-mp3 always produces stereo output, so
// no channel mapping is required.
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - The sample rate depends on the file (typically 44.1kHz or 48kHz)
package mp3
