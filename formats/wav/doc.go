// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM format.
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files as stereo frames:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
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
// channels; files with more than two channels are rejected.
//
// # Writing WAV Files
//
// Use WriteWAV16 to write mixed output as a stereo 16-bit PCM file:
//
//	frames := []pcm.Frame{{Left: 0.1, Right: -0.1}}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 44100, frames)
//
// The function writes a complete WAV file with proper headers.
//
// # Error Handling
//
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedWavLayout: Unsupported channel layout or structure
package wav
