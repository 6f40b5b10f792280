package eliminate

import (
	"strings"
	"unicode/utf8"
)

// loopGroup turns the self-loop labels of a state into the starred group
// threaded between every rerouted prefix and suffix: "(l1|l2|...)*", or
// "c*" when the group would bracket a single symbol. No labels yield the
// empty string, the identity for concatenation.
func loopGroup(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	inner := strings.Join(labels, "|")
	if utf8.RuneCountInString(inner) == 1 {
		return inner + "*"
	}

	return "(" + inner + ")*"
}

// closure stars a single label, adding parentheses only when the label is
// not already a single symbol or one bracketed group.
func closure(label string) string {
	switch {
	case label == "":
		return ""
	case utf8.RuneCountInString(label) == 1, isBracketedUnit(label):
		return label + "*"
	default:
		return "(" + label + ")*"
	}
}

// alternate joins the non-empty labels into one disjunction. A single label
// is returned as is; none yields the empty string.
func alternate(labels ...string) string {
	kept := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}

	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	default:
		return "(" + strings.Join(kept, "|") + ")"
	}
}

// isBracketedUnit reports whether w is one parenthesized group, e.g. "(0|1)"
// but not "(0)(1)". Labels are well formed by construction.
func isBracketedUnit(w string) bool {
	if len(w) < 2 || w[0] != '(' || w[len(w)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(w)-1; i++ {
		switch w[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return false
		}
	}

	return true
}
