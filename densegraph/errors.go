// SPDX-License-Identifier: MIT
package densegraph

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates that NewGraph was called with n < 0.
var ErrNegativeSize = errors.New("densegraph: negative vertex count")

// ErrVertexOutOfRange indicates an edge endpoint or vertex argument fell
// outside [0, n).
var ErrVertexOutOfRange = errors.New("densegraph: vertex out of range")

// ErrPermutationSize indicates Permute was called with a permutation whose
// length does not match the graph's vertex count.
var ErrPermutationSize = errors.New("densegraph: permutation size mismatch")

func densegraphErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("densegraph.%s: %w", method, fmt.Errorf(format, args...))
}
