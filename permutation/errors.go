// SPDX-License-Identifier: MIT
package permutation

import (
	"errors"
	"fmt"
)

// ErrNotAPermutation indicates FromArray was given a slice that does not
// contain each of 0..n-1 exactly once.
var ErrNotAPermutation = errors.New("permutation: not a valid permutation")

// ErrSizeMismatch indicates an operation (Compose, Equal, ...) was given
// permutations of different lengths.
var ErrSizeMismatch = errors.New("permutation: size mismatch")

func permutationErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("permutation.%s: %w", method, fmt.Errorf(format, args...))
}
