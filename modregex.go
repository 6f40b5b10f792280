package modregex

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/katalvlaran/modregex/builder"
	"github.com/katalvlaran/modregex/eliminate"
)

// Sentinel errors for boundary validation.
var (
	// ErrNegativeInput indicates a negative divisor, base or remainder.
	ErrNegativeInput = errors.New("modregex: inputs must be non-negative")

	// ErrZeroDivisor indicates divisor == 0.
	ErrZeroDivisor = errors.New("modregex: cannot divide by 0")

	// ErrRemainderRange indicates remainder >= divisor.
	ErrRemainderRange = errors.New("modregex: remainder must be less than divisor")

	// ErrBaseRange indicates a base the digit encoding cannot express.
	ErrBaseRange = errors.New("modregex: base must be at most 16")
)

// MaxBase is the largest supported numeral base.
const MaxBase = builder.MaxBase

// Validate checks the boundary preconditions of ModRegex.
func Validate(divisor, base, remainder int) error {
	switch {
	case divisor < 0 || base < 0 || remainder < 0:
		return fmt.Errorf("divisor=%d base=%d remainder=%d: %w", divisor, base, remainder, ErrNegativeInput)
	case divisor == 0:
		return ErrZeroDivisor
	case remainder >= divisor:
		return fmt.Errorf("remainder=%d divisor=%d: %w", remainder, divisor, ErrRemainderRange)
	case base > MaxBase:
		return fmt.Errorf("base=%d: %w", base, ErrBaseRange)
	}

	return nil
}

// ModRegex returns the anchored regular expression matching exactly the
// base-base numerals whose value is congruent to remainder mod divisor.
// Options tune the elimination engine (order, tracing hooks) without
// changing the accepted language.
//
// Base 0 is answered in closed form without building an automaton.
func ModRegex(divisor, base, remainder int, opts ...eliminate.Option) (string, error) {
	if err := Validate(divisor, base, remainder); err != nil {
		return "", err
	}
	if base == 0 {
		return builder.ZeroBase(divisor, remainder)
	}

	a, err := builder.NewResidue(divisor, base)
	if err != nil {
		return "", fmt.Errorf("modregex: %w", err)
	}
	re, err := eliminate.Run(a, remainder, opts...)
	if err != nil {
		return "", fmt.Errorf("modregex: %w", err)
	}

	return re, nil
}

// Compile is ModRegex followed by regexp.Compile.
func Compile(divisor, base, remainder int, opts ...eliminate.Option) (*regexp.Regexp, error) {
	expr, err := ModRegex(divisor, base, remainder, opts...)
	if err != nil {
		return nil, err
	}

	return regexp.Compile(expr)
}
