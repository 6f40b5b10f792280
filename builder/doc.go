// Package builder constructs the modular-residue automaton that the
// elimination engine reduces to a regular expression.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildAutomaton(n, opts, cons...): allocate n states, resolve options,
//     run constructors in order.
//     – NewResidue(divisor, base, opts...): the common one-constructor case.
//   - Constructors:
//     – Residue(divisor, base): state s on digit k goes to (base*s+k) mod divisor.
//   - Closed forms:
//     – ZeroBase(divisor, remainder): ^(0{d})*$ or ^0{r}(0{d})*$ for base 0.
//   - Digit encodings (SymbolFn):
//     – HexSymbolFn:        "0123456789abcdef" (default, bases up to 16).
//     – AlphabetSymbolFn:   k-th rune of a caller-supplied alphabet.
//   - Options:
//     – WithSymbols(alphabet), WithHexSymbols().
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrZeroDivisor, ErrBaseTooLarge, ErrBadBase,
//     ErrBadRemainder, ErrConstructFailed) wrapped with method context.
//   - Deterministic transition order: states ascending, digits ascending.
package builder
