// SPDX-License-Identifier: MIT
package sparsegraph

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates FromEdges was called with n < 0.
var ErrNegativeSize = errors.New("sparsegraph: negative vertex count")

// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, n).
var ErrVertexOutOfRange = errors.New("sparsegraph: vertex out of range")

// ErrPermutationSize indicates Permute received a mismatched-length
// permutation.
var ErrPermutationSize = errors.New("sparsegraph: permutation size mismatch")

func sparsegraphErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("sparsegraph.%s: %w", method, fmt.Errorf(format, args...))
}
