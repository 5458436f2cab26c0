// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files as stereo frames:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]pcm.Frame, 4096)
//	n, err := src.ReadFrames(buf)
//
// Vorbis decodes natively to float32 samples in [-1.0, 1.0], so no
// scaling is needed. Mono files are duplicated onto both channels;
// files with more than two channels are rejected with
// ErrUnsupportedVorbisLayout.
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - Only mono and stereo streams are accepted
package vorbis
