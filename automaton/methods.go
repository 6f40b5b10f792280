// File: methods.go
// Role: Transition lifecycle: AddTransition, Transitions, Labels, Detach,
//       Merge/MergeAll (parallel-edge collapse) and Remove (arena eviction).
// Determinism:
//   - Transitions are stored and returned in insertion order.
//   - Merge emits one transition per destination in first-seen order and
//     joins labels in their stored order.

package automaton

import (
	"fmt"
	"strings"
)

// check validates that s names a live arena slot.
func (a *Automaton) check(s int) error {
	if s < 0 || s >= len(a.states) {
		return fmt.Errorf("state %d of %d: %w", s, len(a.states), ErrStateOutOfRange)
	}
	if a.removed[s] {
		return fmt.Errorf("state %d: %w", s, ErrStateRemoved)
	}

	return nil
}

// AddTransition appends a transition from→to labelled label.
// An identical (label, to) pair already present on from is not duplicated,
// so repeated insertion is a no-op.
//
// Errors: ErrStateOutOfRange, ErrStateRemoved, ErrEmptyLabel.
// Complexity: O(out-degree(from)).
func (a *Automaton) AddTransition(from, to int, label string) error {
	if err := a.check(from); err != nil {
		return fmt.Errorf("AddTransition: from: %w", err)
	}
	if err := a.check(to); err != nil {
		return fmt.Errorf("AddTransition: to: %w", err)
	}
	if label == "" {
		return fmt.Errorf("AddTransition(%d→%d): %w", from, to, ErrEmptyLabel)
	}

	for _, t := range a.states[from] {
		if t.To == to && t.Label == label {
			return nil
		}
	}
	a.states[from] = append(a.states[from], Transition{Label: label, To: to})

	return nil
}

// Transitions returns a copy of the transitions leaving s.
func (a *Automaton) Transitions(s int) ([]Transition, error) {
	if err := a.check(s); err != nil {
		return nil, fmt.Errorf("Transitions: %w", err)
	}
	out := make([]Transition, len(a.states[s]))
	copy(out, a.states[s])

	return out, nil
}

// Labels returns the labels of every transition from→to, in stored order.
// Removed or out-of-range states yield nil.
func (a *Automaton) Labels(from, to int) []string {
	if a.check(from) != nil {
		return nil
	}
	var labels []string
	for _, t := range a.states[from] {
		if t.To == to {
			labels = append(labels, t.Label)
		}
	}

	return labels
}

// Detach removes every transition from→to and returns their labels.
// The remaining transitions of from keep their relative order.
// Complexity: O(out-degree(from)).
func (a *Automaton) Detach(from, to int) ([]string, error) {
	if err := a.check(from); err != nil {
		return nil, fmt.Errorf("Detach: %w", err)
	}

	kept := a.states[from][:0]
	var labels []string
	for _, t := range a.states[from] {
		if t.To == to {
			labels = append(labels, t.Label)
			continue
		}
		kept = append(kept, t)
	}
	a.states[from] = kept

	return labels, nil
}

// Merge collapses parallel transitions leaving s: every destination reached
// by more than one label gets a single transition labelled "(l1|l2|...)".
// Single-label destinations pass through unchanged, so Merge on an already
// merged state changes nothing.
//
// It returns the number of destinations whose labels were combined.
// Complexity: O(out-degree(s)).
func (a *Automaton) Merge(s int) (int, error) {
	if err := a.check(s); err != nil {
		return 0, fmt.Errorf("Merge: %w", err)
	}

	// group labels by destination, remembering first-seen destination order
	var order []int
	groups := make(map[int][]string, len(a.states[s]))
	for _, t := range a.states[s] {
		if _, seen := groups[t.To]; !seen {
			order = append(order, t.To)
		}
		groups[t.To] = append(groups[t.To], t.Label)
	}

	merged := 0
	out := make([]Transition, 0, len(order))
	for _, to := range order {
		labels := groups[to]
		if len(labels) == 1 {
			out = append(out, Transition{Label: labels[0], To: to})
			continue
		}
		merged++
		out = append(out, Transition{Label: "(" + strings.Join(labels, "|") + ")", To: to})
	}
	a.states[s] = out

	return merged, nil
}

// MergeAll runs Merge on every live state and returns the total number of
// combined destinations.
func (a *Automaton) MergeAll() int {
	total := 0
	for _, s := range a.Live() {
		n, _ := a.Merge(s) // s is live, Merge cannot fail
		total += n
	}

	return total
}

// Remove evicts s from the arena: its own transitions are dropped and any
// transition still pointing at s from a live state is stripped.
//
// Errors: ErrStateOutOfRange, ErrStateRemoved.
// Complexity: O(total transitions).
func (a *Automaton) Remove(s int) error {
	if err := a.check(s); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	a.states[s] = nil
	a.removed[s] = true

	for _, other := range a.Live() {
		_, _ = a.Detach(other, s)
	}

	return nil
}

// Removed reports whether s was evicted. Out-of-range indices report false.
func (a *Automaton) Removed(s int) bool {
	return s >= 0 && s < len(a.removed) && a.removed[s]
}

// Live returns the indices of all states not yet removed, ascending.
func (a *Automaton) Live() []int {
	live := make([]int, 0, len(a.states))
	for s := range a.states {
		if !a.removed[s] {
			live = append(live, s)
		}
	}

	return live
}

// TransitionCount returns the number of transitions held by live states.
// The builder checks it after construction; elsewhere it serves inspection.
func (a *Automaton) TransitionCount() int {
	n := 0
	for s, ts := range a.states {
		if !a.removed[s] {
			n += len(ts)
		}
	}

	return n
}
