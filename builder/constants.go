// Package builder defines shared constants used by the automaton
// constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodResidue is the canonical name for the Residue constructor.
	MethodResidue = "Residue"
	// MethodZeroBase is the canonical name for the ZeroBase expression.
	MethodZeroBase = "ZeroBase"
	// MethodBuildAutomaton is the canonical name for the orchestrator.
	MethodBuildAutomaton = "BuildAutomaton"
)

// MinDivisor is the smallest divisor a residue automaton can be built for.
const MinDivisor = 1

// MaxBase is the largest base supported by the default encoding.
const MaxBase = len(HexSymbols)
