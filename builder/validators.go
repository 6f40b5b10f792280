// Package builder provides validation helpers to enforce parameter
// contracts in the automaton constructors.
package builder

// validateDivisor ensures divisor ≥ MinDivisor.
// Complexity: O(1).
func validateDivisor(method string, divisor int) error {
	if divisor < MinDivisor {
		return builderErrorf(method, "divisor=%d: %w", divisor, ErrZeroDivisor)
	}

	return nil
}

// validateBase ensures 0 ≤ base ≤ maxBase.
// Complexity: O(1).
func validateBase(method string, base, maxBase int) error {
	if base < 0 {
		return builderErrorf(method, "base=%d: %w", base, ErrBadBase)
	}
	if base > maxBase {
		return builderErrorf(method, "base=%d > %d symbols: %w", base, maxBase, ErrBaseTooLarge)
	}

	return nil
}

// validateRemainder ensures 0 ≤ remainder < divisor.
// Complexity: O(1).
func validateRemainder(method string, remainder, divisor int) error {
	if remainder < 0 || remainder >= divisor {
		return builderErrorf(method, "remainder=%d not in [0,%d): %w", remainder, divisor, ErrBadRemainder)
	}

	return nil
}
