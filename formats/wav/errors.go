// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the input is not a valid WAV file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout is returned for channel layouts other
	// than mono or stereo.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
