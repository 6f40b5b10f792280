// Package builder provides the digit encodings used to label residue
// transitions.
package builder

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// SymbolFn maps a digit value to the symbol labelling its transition.
// It must be pure and deterministic.
type SymbolFn func(digit int) string

// HexSymbols is the fixed numeral encoding "0123456789abcdef".
const HexSymbols = "0123456789abcdef"

// AlphabetSymbolFn returns a SymbolFn reading the k-th rune of alphabet.
// Panics if alphabet is empty, repeats a rune, or holds a regexp
// metacharacter; digits out of range panic on use, so callers validate base
// against the alphabet size first.
func AlphabetSymbolFn(alphabet string) SymbolFn {
	symbols := splitAlphabet(alphabet)
	return func(digit int) string {
		if digit < 0 || digit >= len(symbols) {
			panic(fmt.Sprintf("builder: digit %d outside alphabet of %d symbols", digit, len(symbols)))
		}
		return symbols[digit]
	}
}

// splitAlphabet validates alphabet and returns one symbol per rune.
func splitAlphabet(alphabet string) []string {
	if alphabet == "" {
		panic("builder: empty alphabet")
	}
	if !utf8.ValidString(alphabet) {
		panic(fmt.Sprintf("builder: alphabet %q is not valid UTF-8", alphabet))
	}

	symbols := make([]string, 0, utf8.RuneCountInString(alphabet))
	seen := make(map[rune]bool, cap(symbols))
	for _, r := range alphabet {
		sym := string(r)
		if regexp.QuoteMeta(sym) != sym {
			panic(fmt.Sprintf("builder: symbol %q is a regexp metacharacter", sym))
		}
		if seen[r] {
			panic(fmt.Sprintf("builder: symbol %q repeated in alphabet", sym))
		}
		seen[r] = true
		symbols = append(symbols, sym)
	}

	return symbols
}

var hexSymbols = AlphabetSymbolFn(HexSymbols)

// HexSymbolFn is the default SymbolFn: 0→"0", 10→"a", 15→"f".
func HexSymbolFn(digit int) string {
	return hexSymbols(digit)
}
