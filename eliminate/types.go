// Package eliminate defines options, hooks and sentinel errors for the
// state-elimination engine.
package eliminate

import (
	"errors"

	"github.com/katalvlaran/modregex/automaton"
)

var (
	// ErrNilAutomaton is returned when a nil automaton is passed to Run.
	ErrNilAutomaton = errors.New("eliminate: automaton is nil")

	// ErrRemainderRange indicates remainder is not a state of the automaton.
	ErrRemainderRange = errors.New("eliminate: remainder out of range")

	// ErrBadOrder indicates an OrderStrategy produced a sequence that is not a
	// permutation of the states ending with the distinguished states.
	ErrBadOrder = errors.New("eliminate: invalid elimination order")

	// ErrUnreachable indicates the target remainder cannot be reached from
	// state 0, so no numeral has that residue (only possible for base 1).
	ErrUnreachable = errors.New("eliminate: remainder unreachable from state 0")
)

// OrderStrategy returns the sequence in which states are visited.
// The result must be a permutation of 0..a.Len()-1 whose last element is 0
// and, when remainder != 0, whose second-to-last element is remainder.
type OrderStrategy func(a *automaton.Automaton, remainder int) []int

// Option configures optional behavior of Run.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// Order chooses the elimination sequence; defaults to Descending.
	Order OrderStrategy

	// OnMerge, if non-nil, is invoked after the parallel-edge merge of every
	// round with the visited state and the number of destinations whose
	// labels were combined across the whole automaton.
	OnMerge func(state, merged int)

	// OnEliminate, if non-nil, is invoked when a state is removed, with the
	// starred self-loop group that was threaded into the rerouted edges
	// (empty when the state had no self-loop).
	OnEliminate func(state int, loop string)
}

// DefaultOptions returns Options with the Descending order and no hooks.
func DefaultOptions() Options {
	return Options{
		Order:       Descending,
		OnMerge:     nil,
		OnEliminate: nil,
	}
}

// WithOrder returns an Option that selects the elimination order.
// Panics on nil.
func WithOrder(strategy OrderStrategy) Option {
	if strategy == nil {
		panic("eliminate: WithOrder(nil)")
	}
	return func(o *Options) {
		o.Order = strategy
	}
}

// WithOnMerge returns an Option that installs fn as the merge hook.
func WithOnMerge(fn func(state, merged int)) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// WithOnEliminate returns an Option that installs fn as the elimination hook.
func WithOnEliminate(fn func(state int, loop string)) Option {
	return func(o *Options) {
		o.OnEliminate = fn
	}
}
