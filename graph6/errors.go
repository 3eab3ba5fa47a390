// SPDX-License-Identifier: MIT
package graph6

import (
	"errors"
	"fmt"
)

// ErrTruncated indicates the input ended before a complete encoding (an
// N(n) header or an expected run of body bytes) could be read.
var ErrTruncated = errors.New("graph6: truncated input")

// ErrBadByte indicates a body byte fell outside the valid 63..126 range
// (spec.md §7 "I/O decoders raise a parse error pointing at the byte
// offset").
var ErrBadByte = errors.New("graph6: byte out of range")

// ErrWrongPrefix indicates the caller asked to decode one format (e.g.
// digraph6) but the input carries a different format's prefix byte.
var ErrWrongPrefix = errors.New("graph6: wrong format prefix")

func graph6Errorf(method string, offset int, base error) error {
	return fmt.Errorf("graph6.%s: byte offset %d: %w", method, offset, base)
}
