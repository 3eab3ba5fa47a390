// SPDX-License-Identifier: MIT
package schreier

import (
	"errors"
	"fmt"
)

// ErrEmptyDomain indicates NewChain was called with n <= 0.
var ErrEmptyDomain = errors.New("schreier: empty domain")

func schreierErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("schreier.%s: %w", method, fmt.Errorf(format, args...))
}
