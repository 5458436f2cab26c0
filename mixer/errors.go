// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrNotSingle = errors.New("crossfade requires exactly one active passage")
)
