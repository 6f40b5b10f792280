package eliminate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/modregex/automaton"
)

// Order strategy names accepted by ParseOrder.
const (
	OrderDescending    = "descending"
	OrderFurthestFirst = "furthest"
)

// Descending visits the intermediate states from the top of the arena down
// and keeps the distinguished states for last:
//
//	remainder == 0:  n-1, n-2, …, 1, 0
//	remainder != 0:  n-1, …, remainder+1, remainder-1, …, 1, remainder, 0
func Descending(a *automaton.Automaton, remainder int) []int {
	n := a.Len()
	order := make([]int, 0, n)
	if remainder == 0 {
		for s := n - 1; s >= 0; s-- {
			order = append(order, s)
		}
		return order
	}

	for s := n - 1; s > remainder; s-- {
		order = append(order, s)
	}
	for s := remainder - 1; s >= 1; s-- {
		order = append(order, s)
	}

	return append(order, remainder, 0)
}

// FurthestFirst visits intermediate states by decreasing breadth-first
// distance from state 0, so states deep in the automaton are folded before
// those next to the start. States unreachable from 0 go first; ties are
// broken by larger index first. The distinguished states stay last.
//
// When state 0 has already been removed no distances exist and the result
// is Descending(a, remainder). Run never reaches that case: it rejects such
// an automaton with automaton.ErrStateRemoved before asking for an order.
func FurthestFirst(a *automaton.Automaton, remainder int) []int {
	dist, err := a.Distances(0)
	if err != nil {
		return Descending(a, remainder)
	}

	n := a.Len()
	middle := make([]int, 0, n)
	for s := n - 1; s >= 1; s-- {
		if s != remainder {
			middle = append(middle, s)
		}
	}

	depth := func(s int) int {
		if d, ok := dist[s]; ok {
			return d
		}
		return math.MaxInt
	}
	sort.SliceStable(middle, func(i, j int) bool {
		return depth(middle[i]) > depth(middle[j])
	})

	if remainder != 0 {
		middle = append(middle, remainder)
	}

	return append(middle, 0)
}

// ParseOrder resolves a strategy by name (case-insensitive).
func ParseOrder(name string) (OrderStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", OrderDescending:
		return Descending, nil
	case OrderFurthestFirst:
		return FurthestFirst, nil
	default:
		return nil, fmt.Errorf("unknown order %q: %w", name, ErrBadOrder)
	}
}

// validateOrder checks that order is a permutation of 0..n-1 ending with
// the distinguished states.
func validateOrder(order []int, n, remainder int) error {
	if len(order) != n {
		return fmt.Errorf("order has %d states, want %d: %w", len(order), n, ErrBadOrder)
	}

	seen := make([]bool, n)
	for _, s := range order {
		if s < 0 || s >= n || seen[s] {
			return fmt.Errorf("state %d repeated or out of range: %w", s, ErrBadOrder)
		}
		seen[s] = true
	}

	if order[n-1] != 0 {
		return fmt.Errorf("last state is %d, want 0: %w", order[n-1], ErrBadOrder)
	}
	if remainder != 0 && order[n-2] != remainder {
		return fmt.Errorf("second-to-last state is %d, want %d: %w", order[n-2], remainder, ErrBadOrder)
	}

	return nil
}
