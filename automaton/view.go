// File: view.go
// Role: Human-readable dump of live states and their transitions.
// Determinism:
//   - States ascending, transitions in stored order (stable goldens/logs).

package automaton

import (
	"strconv"
	"strings"
)

// String renders the live part of the automaton, one state per line:
//
//	0: 0→0 1→1
//	1: 0→2 1→0
//
// Removed states are omitted.
func (a *Automaton) String() string {
	var sb strings.Builder
	for _, s := range a.Live() {
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte(':')
		for _, t := range a.states[s] {
			sb.WriteByte(' ')
			sb.WriteString(t.Label)
			sb.WriteString("→")
			sb.WriteString(strconv.Itoa(t.To))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
