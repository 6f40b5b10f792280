// SPDX-License-Identifier: MIT
// Package: modregex/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • symbolFn = HexSymbolFn  ("0".."9","a".."f")
//   • maxBase  = 16           (len(HexSymbols))

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Digit encoding: digit value -> transition label.
	symbolFn SymbolFn
	// Largest base the encoding can label.
	maxBase int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		symbolFn: HexSymbolFn,     // "0".."f"
		maxBase:  len(HexSymbols), // 16
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
