// SPDX-License-Identifier: MIT
package colorreduce

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, n).
var ErrVertexOutOfRange = errors.New("colorreduce: vertex out of range")

// ErrNegativeLabel indicates a labeled edge carried a negative label; labels
// must be non-negative (negative values are reserved to mean "unlabeled").
var ErrNegativeLabel = errors.New("colorreduce: negative edge label")

// ErrColoringSizeMismatch indicates VertexColors was non-nil but did not
// have exactly n entries.
var ErrColoringSizeMismatch = errors.New("colorreduce: vertex coloring size mismatch")

// ErrLabelVertexEscaped indicates a generator computed on the reduced graph
// mapped an original vertex to a label-vertex, which spec.md §8 P6 (color
// preservation) rules out for any well-formed automorphism; seeing it
// means the generator did not actually come from running Reduce's own
// coloring through the engine.
var ErrLabelVertexEscaped = errors.New("colorreduce: generator maps an original vertex outside the original range")

func colorreduceErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("colorreduce.%s: %w", method, fmt.Errorf(format, args...))
}
