// SPDX-License-Identifier: EPL-2.0

package crossmix

import "errors"

var (
	ErrNotEnqueued = errors.New("passage not enqueued")
)
