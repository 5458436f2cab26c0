// SPDX-License-Identifier: EPL-2.0

package fade

import "errors"

var (
	ErrUnknownCurve = errors.New("unknown fade curve")
)
