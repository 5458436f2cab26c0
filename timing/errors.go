// SPDX-License-Identifier: EPL-2.0

package timing

import "errors"

var (
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrUnsupportedRate  = errors.New("unsupported sample rate")
	ErrNonMonotonic     = errors.New("timing points must be non-decreasing")
)
