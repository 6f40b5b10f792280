// Package modregex builds regular expressions that recognise numerals by
// their residue: for a divisor d, a base b and a remainder r it returns an
// anchored expression matching exactly the base-b numerals whose value is
// congruent to r modulo d.
//
// What happens under the hood:
//
//	builder/   — the modular-residue automaton: d states, one transition per digit
//	automaton/ — arena of residue states with labelled transitions, merge, reroute, BFS
//	eliminate/ — state elimination down to states 0 and r, then final assembly
//
// Quick example:
//
//	re, _ := modregex.ModRegex(3, 2, 1)
//	// ^(0|1(01*0)*1)*1(01*0)*$ matches "1", "100", "111" (1, 4, 7)
//
// Digits use the symbols "0123456789abcdef", so bases up to 16 are
// supported. Base 0 yields a closed form over runs of zeros.
//
//	go get github.com/katalvlaran/modregex
package modregex
