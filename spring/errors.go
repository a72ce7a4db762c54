// SPDX-License-Identifier: MIT

package spring

import "errors"

var (
	// ErrInvalidLength indicates a sequence whose length differs from the
	// collection size, or a negative collection size.
	ErrInvalidLength = errors.New("spring: invalid length")

	// ErrIndexOutOfRange indicates a slot index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("spring: index out of range")
)
