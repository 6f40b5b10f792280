// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// impl_zero_base.go — closed-form expression for base 0.
//
// With no nonzero digits every numeral is a run of "0" symbols, and a run of
// length r + j*divisor is the only way to land on residue r. No automaton is
// built.

package builder

import "fmt"

// ZeroBase returns the anchored expression accepting exactly the runs of
// zeros whose length is congruent to remainder modulo divisor:
//
//	remainder == 0: ^(0{d})*$
//	otherwise:      ^0{r}(0{d})*$
//
// Errors: ErrZeroDivisor, ErrBadRemainder.
func ZeroBase(divisor, remainder int) (string, error) {
	if err := validateDivisor(MethodZeroBase, divisor); err != nil {
		return "", err
	}
	if err := validateRemainder(MethodZeroBase, remainder, divisor); err != nil {
		return "", err
	}

	if remainder == 0 {
		return fmt.Sprintf("^(0{%d})*$", divisor), nil
	}

	return fmt.Sprintf("^0{%d}(0{%d})*$", remainder, divisor), nil
}
