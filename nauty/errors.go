// SPDX-License-Identifier: MIT
package nauty

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph indicates a malformed graph input: an out-of-range
// endpoint or a negative vertex count (spec.md §7 "Input validation"). A
// size mismatch between a graph and a supplied initial coloring is reported
// as ErrMalformedPartition.
var ErrInvalidGraph = errors.New("nauty: invalid graph")

// ErrMalformedPartition indicates a user-supplied initial coloring is not a
// valid total assignment over 0..n-1 (spec.md §7 "Input validation").
var ErrMalformedPartition = errors.New("nauty: malformed initial partition")

// ErrCapacityExceeded indicates n exceeds what the platform's bitset words
// can represent (spec.md §7 "Capacity exhaustion"). No partial result is
// returned alongside this error.
var ErrCapacityExceeded = errors.New("nauty: capacity exceeded")

// ErrGenerationBoundExceeded indicates GenerateGroup's caller-supplied size
// bound was reached before the closure of the generating set completed.
var ErrGenerationBoundExceeded = errors.New("nauty: group generation bound exceeded")

func nautyErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("nauty.%s: %w", method, fmt.Errorf(format, args...))
}
