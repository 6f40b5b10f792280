// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildAutomaton(n, bopts, cons...). Creates the arena,
//     resolves cfg, runs cons in order.
//   - Factories are declared here and implemented in impl_*.go.
//   - Determinism: same inputs/options and constructor order ⇒ identical
//     transition order and therefore identical expressions downstream.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
)

// Constructor populates an automaton using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(a *automaton.Automaton, cfg builderConfig) error

// BuildAutomaton creates an automaton with n states, resolves the builder
// configuration from bopts and applies all constructors in order. Any
// constructor error is wrapped with "BuildAutomaton: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildAutomaton(n int, bopts []BuilderOption, cons ...Constructor) (*automaton.Automaton, error) {
	if err := validateDivisor(MethodBuildAutomaton, n); err != nil {
		return nil, err
	}
	a := automaton.New(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildAutomaton, i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildAutomaton, err)
		}
	}

	return a, nil
}

// NewResidue is a shortcut for BuildAutomaton(divisor, opts, Residue(divisor, base)).
// Complexity: O(divisor * base).
func NewResidue(divisor, base int, opts ...BuilderOption) (*automaton.Automaton, error) {
	return BuildAutomaton(divisor, opts, Residue(divisor, base))
}

// Residue adds, for every state s in [0, divisor) and digit k in [0, base),
// the transition s --sym(k)--> (base*s + k) mod divisor.
// Implemented in impl_residue.go.
//func Residue(divisor, base int) Constructor

// ZeroBase returns the closed-form anchored expression for base 0, where the
// only numerals are runs of zero digits. Implemented in impl_zero_base.go.
//func ZeroBase(divisor, remainder int) (string, error)
