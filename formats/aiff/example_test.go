// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/crossmix/formats/aiff"
	"github.com/ik5/crossmix/formats/wav"
	"github.com/ik5/crossmix/pcm"
)

// ExampleDecoder_Decode shows how to decode an AIFF file.
func ExampleDecoder_Decode() {
	decoder := aiff.Decoder{}

	f, err := os.Open("audio.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz\n", src.SampleRate())
}

// ExampleDecoder_Decode_convertToWav demonstrates converting AIFF to WAV.
func ExampleDecoder_Decode_convertToWav() {
	aiffFile, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer aiffFile.Close()

	decoder := aiff.Decoder{}
	src, err := decoder.Decode(aiffFile)
	if err != nil {
		log.Fatal(err)
	}

	// Read the whole stream as stereo frames
	buf := make([]pcm.Frame, 4096)
	var frames []pcm.Frame
	for {
		n, err := src.ReadFrames(buf)
		if n > 0 {
			frames = append(frames, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	// Write to WAV
	wavFile, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer wavFile.Close()

	if err := wav.WriteWAV16(wavFile, src.SampleRate(), frames); err != nil {
		log.Fatal(err)
	}

	fmt.Println("AIFF converted to WAV")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid files.
func ExampleDecoder_Decode_errorHandling() {
	decoder := aiff.Decoder{}

	// Try to decode invalid AIFF data
	invalidData := bytes.NewReader([]byte("not an aiff file"))
	_, err := decoder.Decode(invalidData)

	if err == aiff.ErrNotAiffFile {
		fmt.Println("Detected: Not a valid AIFF file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid AIFF file
}
