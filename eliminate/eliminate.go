// Package eliminate reduces a residue automaton to a single regular
// expression by state elimination.
//
// Every round first merges parallel transitions on all live states, then
// removes the visited state: its self-loop becomes a starred group and every
// edge entering it is rerouted to each of its successors as
// prefix·(loop)*·suffix. State 0 and the target remainder are visited last
// and never removed; the labels left between them are assembled into the
// anchored result.
//
// Complexity:
//
//   - Time:   O(n²) rounds of edge work, with label length growing per round.
//   - Memory: O(total label length).
//
// Errors:
//
//   - ErrNilAutomaton     if a is nil.
//   - ErrRemainderRange   if remainder is not a state of a.
//   - automaton.ErrStateRemoved if state 0 or remainder was already removed.
//   - ErrBadOrder         if the order strategy returns an invalid sequence.
//   - ErrUnreachable      if no path leads from state 0 to remainder.
package eliminate

import (
	"fmt"

	"github.com/katalvlaran/modregex/automaton"
)

// Run eliminates the states of a in the configured order and returns the
// anchored expression for words leading from state 0 to remainder.
// The automaton is consumed: only states 0 and remainder are left live.
func Run(a *automaton.Automaton, remainder int, opts ...Option) (string, error) {
	// 1. Validate input
	if a == nil {
		return "", ErrNilAutomaton
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := a.Len()
	if remainder < 0 || remainder >= n {
		return "", fmt.Errorf("remainder %d with %d states: %w", remainder, n, ErrRemainderRange)
	}
	if a.Removed(0) || a.Removed(remainder) {
		return "", fmt.Errorf("start or remainder %d already eliminated: %w", remainder, automaton.ErrStateRemoved)
	}

	// 2. Resolve the visiting order
	order := o.Order(a, remainder)
	if err := validateOrder(order, n, remainder); err != nil {
		return "", err
	}

	// 3. One round per state
	for i, state := range order {
		merged := a.MergeAll()
		if o.OnMerge != nil {
			o.OnMerge(state, merged)
		}

		// remainder is only merged; state 0 is always last so nothing would
		// be left to reroute into
		if state == remainder || state == 0 {
			continue
		}
		if err := excise(a, state, order[i+1:], o); err != nil {
			return "", err
		}
	}

	// 4. Read the two-state (or one-state) remnant
	return assemble(a, remainder)
}

// excise removes state from a, rerouting every edge that enters it from the
// states in rest through its self-loop to each of its successors.
func excise(a *automaton.Automaton, state int, rest []int, o Options) error {
	out, err := a.Transitions(state)
	if err != nil {
		return fmt.Errorf("eliminate state %d: %w", state, err)
	}
	loop := loopGroup(a.Labels(state, state))

	for _, src := range rest {
		prefixes, err := a.Detach(src, state)
		if err != nil {
			return fmt.Errorf("eliminate state %d: %w", state, err)
		}
		if len(prefixes) == 0 {
			continue
		}
		for _, t := range out {
			if t.To == state {
				continue
			}
			for _, prefix := range prefixes {
				if err := a.AddTransition(src, t.To, prefix+loop+t.Label); err != nil {
					return fmt.Errorf("eliminate state %d: reroute %d→%d: %w", state, src, t.To, err)
				}
			}
		}
	}

	if err := a.Remove(state); err != nil {
		return fmt.Errorf("eliminate state %d: %w", state, err)
	}
	if o.OnEliminate != nil {
		o.OnEliminate(state, loop)
	}

	return nil
}

// assemble builds the anchored expression from the surviving states.
//
// remainder == 0: ^(L)*$ over the self-loop labels of state 0.
// remainder != 0: with a = loop on 0, b = 0→r, c = r→0 and d = loop on r,
// the words from 0 ending at r are ^(a|b·d*·c)*·b·d*$. Absent a, c or d
// simply drop out; absent b means r is unreachable.
func assemble(a *automaton.Automaton, remainder int) (string, error) {
	if remainder == 0 {
		return "^" + closure(alternate(a.Labels(0, 0)...)) + "$", nil
	}

	stay := alternate(a.Labels(0, 0)...)
	enter := alternate(a.Labels(0, remainder)...)
	leave := alternate(a.Labels(remainder, 0)...)
	hold := closure(alternate(a.Labels(remainder, remainder)...))

	if enter == "" {
		return "", fmt.Errorf("remainder %d: %w", remainder, ErrUnreachable)
	}

	roundTrip := ""
	if leave != "" {
		roundTrip = enter + hold + leave
	}

	return "^" + closure(alternate(stay, roundTrip)) + enter + hold + "$", nil
}
