// SPDX-License-Identifier: MIT
package partition

import (
	"errors"
	"fmt"
)

// ErrColoringSize indicates NewFromColoring received a colors slice whose
// length did not match the requested vertex count.
var ErrColoringSize = errors.New("partition: coloring size mismatch")

// ErrSizeMismatch indicates CopyFrom was called on partitions of different
// widths.
var ErrSizeMismatch = errors.New("partition: size mismatch")

func partitionErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("partition.%s: %w", method, fmt.Errorf(format, args...))
}
