// SPDX-License-Identifier: EPL-2.0

// Package source defines the boundary between external audio decoders
// and the mixing core.
//
// A Source delivers stereo frames already resampled to the engine's
// output rate; where the samples came from (a file decoder, a network
// stream, a test generator) is not this module's concern. The Registry
// lets an application wire format decoders by key:
//
//	reg := source.NewRegistry()
//	reg.Register("wav", myWavDecoder{})
//	dec, _ := reg.Get("wav")
//	src, _ := dec.Decode(file)
//
// FromBuffer adapts a fully decoded go-audio buffer into a Source, for
// decoders that produce *audio.FloatBuffer values.
package source
