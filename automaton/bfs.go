package automaton

import "fmt"

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	a       *Automaton
	queue   []queueItem
	visited []bool
	depth   map[int]int
}

// Distances runs a breadth-first search from start over the live states and
// returns the unweighted distance (number of transitions) to every reachable
// state. Unreachable states are absent from the map.
//
// Errors: ErrStateOutOfRange, ErrStateRemoved for an invalid start.
// Complexity: O(n + total transitions).
func (a *Automaton) Distances(start int) (map[int]int, error) {
	if err := a.check(start); err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}

	w := &walker{
		a:       a,
		queue:   make([]queueItem, 0, len(a.states)),
		visited: make([]bool, len(a.states)),
		depth:   make(map[int]int, len(a.states)),
	}
	w.enqueue(start, 0)
	w.loop()

	return w.depth, nil
}

// enqueue marks s visited at depth d and adds it to the queue.
func (w *walker) enqueue(s, d int) {
	w.visited[s] = true
	w.depth[s] = d
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		for _, t := range w.a.states[item.state] {
			if w.a.removed[t.To] || w.visited[t.To] {
				continue
			}
			w.enqueue(t.To, item.depth+1)
		}
	}
}
