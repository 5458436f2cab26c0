// SPDX-License-Identifier: EPL-2.0

package source

import "errors"

var (
	ErrNoDecoder         = errors.New("no decoder registered for format")
	ErrUnsupportedLayout = errors.New("source must be mono or stereo")
)
