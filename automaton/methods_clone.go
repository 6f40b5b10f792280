// File: methods_clone.go
// Role: Cloning automaton instances so callers can keep a pristine copy
//       before handing one to the destructive elimination engine.

package automaton

// Clone returns a deep copy: arena size, removed flags and every transition.
// It is an inspection helper: the engine never clones, so callers that want
// to look at the automaton after elimination keep a Clone beforehand.
// Complexity: O(n + total transitions).
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		states:  make([][]Transition, len(a.states)),
		removed: make([]bool, len(a.removed)),
	}
	copy(c.removed, a.removed)
	for s, ts := range a.states {
		if ts == nil {
			continue
		}
		c.states[s] = append([]Transition(nil), ts...)
	}

	return c
}
