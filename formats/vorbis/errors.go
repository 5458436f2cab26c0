// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrUnsupportedVorbisLayout is returned for channel layouts other
	// than mono or stereo.
	ErrUnsupportedVorbisLayout = errors.New("unsupported Vorbis layout")
)
