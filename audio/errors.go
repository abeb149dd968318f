// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize reports a destination buffer whose length is not
	// a multiple of the stream's channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
