// Package automaton defines the labelled transition graph that the state
// elimination engine rewrites in place.
//
// States are residue indices 0..n-1 held in a fixed arena; "removing" a state
// clears its slot and strips every transition that still points at it. Each
// transition carries a regular-expression fragment as its label.
//
// Errors:
//
//	ErrStateOutOfRange - state index is outside [0, Len()).
//	ErrStateRemoved    - state was already removed from the arena.
//	ErrEmptyLabel      - transition label is the empty string.
package automaton

import "errors"

// Sentinel errors for automaton operations.
var (
	// ErrStateOutOfRange indicates a state index outside the arena.
	ErrStateOutOfRange = errors.New("automaton: state out of range")

	// ErrStateRemoved indicates an operation referenced a removed state.
	ErrStateRemoved = errors.New("automaton: state removed")

	// ErrEmptyLabel indicates a transition was added without a label.
	ErrEmptyLabel = errors.New("automaton: empty transition label")
)

// Transition is a labelled directed edge leaving a state.
//
// Label is a regular-expression fragment (a digit symbol, a parenthesized
// disjunction, a starred group or a concatenation of those). To is the
// destination state index.
type Transition struct {
	// Label is the expression fragment that drives this transition.
	Label string

	// To is the destination residue state.
	To int
}

// Automaton is an arena of residue states with ordered outgoing transitions.
//
// states[s] lists the transitions leaving s in insertion order; the order is
// kept so that merged labels and the final expression are reproducible.
// removed[s] marks arena slots that were eliminated.
//
// An Automaton is owned by a single computation and is not safe for
// concurrent mutation.
type Automaton struct {
	states  [][]Transition // state index → outgoing transitions
	removed []bool         // state index → eliminated flag
}

// New creates an automaton with n states and no transitions.
// A negative n is treated as zero.
// Complexity: O(n).
func New(n int) *Automaton {
	if n < 0 {
		n = 0
	}

	return &Automaton{
		states:  make([][]Transition, n),
		removed: make([]bool, n),
	}
}

// Len returns the arena size, including removed states.
func (a *Automaton) Len() int { return len(a.states) }
