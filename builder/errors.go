// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels never carry parameters.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrZeroDivisor indicates a residue automaton was requested for divisor 0.
// Usage: if errors.Is(err, ErrZeroDivisor) { /* reject input */ }.
var ErrZeroDivisor = errors.New("builder: divisor must be positive")

// ErrBaseTooLarge indicates the base exceeds the number of digit symbols
// available in the configured encoding (16 by default).
var ErrBaseTooLarge = errors.New("builder: base exceeds digit encoding")

// ErrBadBase indicates a negative base.
var ErrBadBase = errors.New("builder: base must be non-negative")

// ErrBadRemainder indicates a remainder outside [0, divisor) for the
// closed-form zero-base expression.
var ErrBadRemainder = errors.New("builder: remainder out of range")

// ErrConstructFailed indicates a constructor could not finish (nil
// constructor, or a transition rejected by the automaton arena).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner message with the given method context:
// "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
