// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import "unicode/utf8"

// BuilderOption customizes a constructor by mutating a builderConfig before
// the automaton is populated.
type BuilderOption func(*builderConfig)

// WithSymbols replaces the digit encoding with alphabet, whose k-th rune
// labels digit k. The largest supported base becomes the rune count.
// Panics on an empty alphabet, a repeated rune or a regexp metacharacter.
func WithSymbols(alphabet string) BuilderOption {
	fn := AlphabetSymbolFn(alphabet)
	size := utf8.RuneCountInString(alphabet)
	return func(c *builderConfig) {
		c.symbolFn = fn
		c.maxBase = size
	}
}

// WithHexSymbols resets the encoding to HexSymbols.
func WithHexSymbols() BuilderOption {
	return WithSymbols(HexSymbols)
}
