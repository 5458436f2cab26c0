// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files as stereo frames:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]pcm.Frame, 4096)
//	n, err := src.ReadFrames(buf)
//
// The decoder returns a source.Source delivering frames with samples
// in the range [-1.0, 1.0]. Mono files are duplicated onto both
// channels; files with more than two channels are rejected with
// ErrUnsupportedAiffLayout.
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - Only mono and stereo files are accepted
package aiff
