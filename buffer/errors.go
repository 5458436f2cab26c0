// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	ErrBufferFull        = errors.New("buffer full")
	ErrInvalidCapacity   = errors.New("capacity must be greater than zero")
	ErrInvalidHeadroom   = errors.New("headroom must be greater than zero and less than capacity")
	ErrInvalidHysteresis = errors.New("resume hysteresis must be greater than zero")
	ErrAlreadyAllocated  = errors.New("buffer already allocated for passage")
	ErrNotAllocated      = errors.New("no buffer allocated for passage")
)
