package search

import (
	"errors"
	"fmt"
)

// ErrAborted indicates the search was cancelled via context before it
// reached a conclusion (spec.md §7 "Cooperative abort").
var ErrAborted = errors.New("search: aborted")

func searchErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("search.%s: %w", method, fmt.Errorf(format, args...))
}
