// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// impl_residue.go — implementation of the Residue(divisor, base) constructor.
//
// Contract:
//   • divisor ≥ 1 (else ErrZeroDivisor), 0 ≤ base ≤ maxBase (else ErrBadBase /
//     ErrBaseTooLarge).
//   • The arena must hold exactly divisor states.
//   • Emits transitions per state ascending, digits ascending:
//     s --sym(k)--> (base*s + k) mod divisor.
//   • Exactly divisor*base transitions result (else ErrConstructFailed).
//   • base == 0 emits nothing; callers use ZeroBase instead.
//
// Complexity:
//   • Time: O(divisor * base). Space: O(divisor * base) transitions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
)

// Residue returns a Constructor that wires the modular-residue DFA.
func Residue(divisor, base int) Constructor {
	return func(a *automaton.Automaton, cfg builderConfig) error {
		if err := validateDivisor(MethodResidue, divisor); err != nil {
			return err
		}
		if err := validateBase(MethodResidue, base, cfg.maxBase); err != nil {
			return err
		}
		if a.Len() != divisor {
			return fmt.Errorf("%s: arena has %d states, want %d: %w", MethodResidue, a.Len(), divisor, ErrConstructFailed)
		}

		for s := 0; s < divisor; s++ {
			for k := 0; k < base; k++ {
				// (base*s + k) mod divisor, reduced early so base*s cannot overflow
				next := ((base%divisor)*s + k) % divisor
				if err := a.AddTransition(s, next, cfg.symbolFn(k)); err != nil {
					return fmt.Errorf("%s: AddTransition(%d→%d): %w", MethodResidue, s, next, err)
				}
			}
		}
		// one transition per digit; fewer means the encoding collapsed symbols
		if got := a.TransitionCount(); got != divisor*base {
			return fmt.Errorf("%s: %d transitions, want %d: %w", MethodResidue, got, divisor*base, ErrConstructFailed)
		}

		return nil
	}
}
